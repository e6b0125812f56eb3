package geo

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// prefPriority breaks ties when a station name exists in several
// prefectures. Checked in order; a candidate outside this list loses to
// any candidate inside it.
var prefPriority = []string{
	"東京都", "大阪府", "神奈川県", "京都府", "愛知県",
	"福岡県", "北海道", "兵庫県", "埼玉県", "千葉県",
}

// StationIndex maps station names to the prefectures they appear in,
// for locations like 「五反田駅徒歩5分」 that never spell out a prefecture.
type StationIndex struct {
	byName map[string][]string
}

// LoadStationIndex reads a station master CSV with at least the columns
// station_name and pref_cd (JIS code 1-47).
func LoadStationIndex(path string) (*StationIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadStationIndex(f)
}

func ReadStationIndex(r io.Reader) (*StationIndex, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("station csv header: %w", err)
	}
	nameCol, codeCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "station_name":
			nameCol = i
		case "pref_cd":
			codeCol = i
		}
	}
	if nameCol < 0 || codeCol < 0 {
		return nil, fmt.Errorf("station csv missing station_name/pref_cd columns")
	}

	idx := &StationIndex{byName: make(map[string][]string)}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("station csv row: %w", err)
		}
		if len(rec) <= nameCol || len(rec) <= codeCol {
			continue
		}
		name := strings.TrimSpace(rec[nameCol])
		code, err := strconv.Atoi(strings.TrimSpace(rec[codeCol]))
		if err != nil || code < 1 || code > len(Prefectures) {
			continue
		}
		pref := Prefectures[code-1]
		if !contains(idx.byName[name], pref) {
			idx.byName[name] = append(idx.byName[name], pref)
		}
	}
	return idx, nil
}

func (s *StationIndex) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byName)
}

// Detect resolves a location with no direct prefecture-name hit by
// collecting the prefectures of every station (2+ chars, to avoid noise)
// whose name occurs in the text, then picking by prefPriority.
func (s *StationIndex) Detect(location string) string {
	if s == nil || location == "" {
		return ""
	}

	candidates := map[string]bool{}
	for station, prefs := range s.byName {
		if len([]rune(station)) < 2 {
			continue
		}
		if strings.Contains(location, station) {
			for _, p := range prefs {
				candidates[p] = true
			}
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	for _, p := range prefPriority {
		if candidates[p] {
			return p
		}
	}
	// no priority hit: any candidate, in canonical order for determinism
	for _, p := range Prefectures {
		if candidates[p] {
			return p
		}
	}
	return ""
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
