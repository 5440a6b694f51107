package notify

import (
	"fmt"
	"log"
	"time"
)

// sendDelay imitates the latency of a real mail provider.
const sendDelay = 500 * time.Millisecond

// SendEmail simulates delivery of a transactional email and returns a
// message id. Callers run it in a goroutine; a failure here must never
// fail the operation that triggered it.
func SendEmail(to, subject, content string) (string, error) {
	time.Sleep(sendDelay)

	log.Printf("📧 Email sent to: %s", to)
	log.Printf("📧 Subject: %s", subject)
	log.Printf("📧 Content: %s", content)

	return fmt.Sprintf("msg_%d", time.Now().UnixMilli()), nil
}
