package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"sync"
	"time"

	"github.com/nadeekaauto/parts-inventory/internal/config"
	models "github.com/nadeekaauto/parts-inventory/internal/models"
	"github.com/nadeekaauto/parts-inventory/internal/redissvc"
)

// LowStockThreshold is the quantity at or below which an item counts as low stock.
const LowStockThreshold = 15

// NotifyLogKey is the Redis list holding restock-notice events.
const NotifyLogKey = "lowstock:notifylog"

// Mailer sends a restock request to an item's supplier.
type Mailer interface {
	SendRestockEmail(item models.InventoryItem) error
}

// Prompter asks whether restock emails should go out for the listed items.
type Prompter interface {
	ConfirmRestock(items []models.InventoryItem) bool
}

type NotifyLogEntry struct {
	ItemID        string    `json:"item_id"`
	ItemName      string    `json:"item_name"`
	SupplierEmail string    `json:"supplier_email"`
	Time          time.Time `json:"time"`
}

// Notifier raises a one-time low-stock alert per item per session. The
// notified set is keyed by item ID so re-running the same (or a narrower)
// listing does not re-fire the prompt; Reset starts a fresh session.
type Notifier struct {
	mu       sync.Mutex
	notified map[string]struct{}

	mailer   Mailer
	prompter Prompter
	redisSvc *redissvc.RedisService
}

func New(mailer Mailer, prompter Prompter, redisSvc *redissvc.RedisService) *Notifier {
	return &Notifier{
		notified: make(map[string]struct{}),
		mailer:   mailer,
		prompter: prompter,
		redisSvc: redisSvc,
	}
}

// Scan returns the items at or below the threshold that have not been
// notified yet this session, and marks them as notified.
func (n *Notifier) Scan(items []models.InventoryItem) []models.InventoryItem {
	n.mu.Lock()
	defer n.mu.Unlock()

	var low []models.InventoryItem
	for _, it := range items {
		if it.Quantity > LowStockThreshold {
			continue
		}
		if _, seen := n.notified[it.ID]; seen {
			continue
		}
		n.notified[it.ID] = struct{}{}
		low = append(low, it)
	}
	return low
}

// Alert runs a scan over a freshly fetched listing and, if the prompter
// confirms, mails every affected supplier. Send failures are logged and do
// not stop the remaining emails.
func (n *Notifier) Alert(items []models.InventoryItem) {
	low := n.Scan(items)
	if len(low) == 0 {
		return
	}

	if n.prompter == nil || !n.prompter.ConfirmRestock(low) {
		return
	}

	for _, it := range low {
		if err := n.mailer.SendRestockEmail(it); err != nil {
			log.Printf("failed to send restock email for %s: %v", it.Name, err)
			continue
		}
		if err := n.redisSvc.LogEvent(NotifyLogKey, NotifyLogEntry{
			ItemID:        it.ID,
			ItemName:      it.Name,
			SupplierEmail: it.SupplierEmail,
			Time:          time.Now(),
		}); err != nil {
			log.Printf("failed to log restock notice: %v", err)
		}
	}
}

// Reset clears the notified set, starting a new notification session.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notified = make(map[string]struct{})
}

// SMTPMailer sends restock emails over plain SMTP.
type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendRestockEmail(item models.InventoryItem) error {
	subject := fmt.Sprintf("Restock request: %s", item.Name)
	body := fmt.Sprintf("Dear Supplier,\n\n"+
		"We would like to inform you that the quantity of the item %q in our inventory provided by you is low. "+
		"Please consider restocking.\n\nBest regards,\n%s", item.Name, m.cfg.ShopName)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.SMTPFrom, item.SupplierEmail, subject, body)

	addr := fmt.Sprintf("%s:%s", m.cfg.SMTPServer, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPServer)

	if m.cfg.SMTPAuthDisabled {
		auth = nil
	}

	return smtp.SendMail(addr, auth, m.cfg.SMTPFrom, []string{item.SupplierEmail}, []byte(msg))
}
