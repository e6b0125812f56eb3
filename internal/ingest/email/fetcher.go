package email

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/emersion/go-imap/v2"

	"reboot-engine/internal/config"
	"reboot-engine/internal/ingest"
	"reboot-engine/internal/secrets"
)

const alertBoardHost = "kyujinbox.com"

// Fetcher turns unseen job-alert emails into a raw-job batch.
type Fetcher struct {
	Cfg config.Config
}

func (f *Fetcher) Name() string { return "email" }

func (f *Fetcher) Fetch(ctx context.Context) (ingest.Batch, error) {
	cfg := f.Cfg.Email
	batch := ingest.Batch{Source: cfg.SourceName}

	password, err := secrets.GetIMAPPassword(secrets.IMAPKeyringAccount(f.Cfg))
	if err != nil {
		return batch, err
	}

	addr := fmt.Sprintf("%s:%d", cfg.IMAPHost, cfg.IMAPPort)
	c, err := dialAndLogin(ctx, addr, cfg.Username, password, cfg.IMAPHost)
	if err != nil {
		return batch, err
	}
	defer logoutAndClose(c)

	msgs, err := fetchUnseen(ctx, c, cfg.Mailbox, cfg.MaxMessages)
	if err != nil {
		return batch, err
	}

	var done []imap.UID
	for _, m := range msgs {
		if cfg.AlertFrom != "" && !strings.EqualFold(m.From, cfg.AlertFrom) {
			continue
		}
		body := htmlBody(m.RawMessage)
		if body == "" {
			continue
		}
		jobs := ParseAlertHTML(body, alertBoardHost)
		if len(jobs) == 0 {
			continue
		}
		log.Printf("[email] uid=%d subject=%q jobs=%d", m.UID, m.Subject, len(jobs))
		batch.Jobs = append(batch.Jobs, jobs...)
		done = append(done, m.UID)
	}

	if err := markSeen(c, done); err != nil {
		log.Printf("[email] mark seen: %v", err)
	}
	return batch, nil
}
