package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nadeekaauto/parts-inventory/internal/client"
	"github.com/nadeekaauto/parts-inventory/internal/config"
	models "github.com/nadeekaauto/parts-inventory/internal/models"
	"github.com/nadeekaauto/parts-inventory/internal/notify"
	"github.com/nadeekaauto/parts-inventory/internal/repo"
)

// The CLI plays the role of the browser pages: each command owns its form
// state for one invocation, validates locally, and talks to the server
// through the client data layer.

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load configuration: ", err)
	}

	c := client.New(cfg.APIBaseURL)
	notifier := notify.New(notify.NewSMTPMailer(cfg), &stdinPrompter{}, nil)

	switch os.Args[1] {
	case "list":
		runList(c, notifier, os.Args[2:])
	case "get":
		runGet(c, os.Args[2:])
	case "create":
		runCreate(c, os.Args[2:])
	case "edit":
		runEdit(c, os.Args[2:])
	case "delete":
		runDelete(c, os.Args[2:])
	case "add-stock":
		runAdjustStock(c, "add-stock", os.Args[2:])
	case "retrieve-stock":
		runAdjustStock(c, "retrieve-stock", os.Args[2:])
	case "report":
		runReport(c, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: inventory <command> [flags]

Commands:
  list [query]      list items, optionally filtered by a search query
  get               show one item
  create            add a new item
  edit              update fields of an item
  delete            remove an item
  add-stock         add units to an item's quantity
  retrieve-stock    take units out of an item's quantity
  report            download the printable report (csv or json)`)
}

func runList(c *client.Client, notifier *notify.Notifier, args []string) {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	items, err := c.List(query)
	if err != nil {
		log.Fatal(err)
	}

	printItems(items)
	notifier.Alert(items)
}

func runGet(c *client.Client, args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.String("id", "", "item ID")
	fs.Parse(args)
	if *id == "" {
		log.Fatal("-id is required")
	}

	item, err := c.Get(*id)
	if err != nil {
		log.Fatal(err)
	}
	printItems([]models.InventoryItem{item})
}

func runCreate(c *client.Client, args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	form := client.ItemForm{}
	fs.StringVar(&form.Name, "name", "", "item name")
	fs.StringVar(&form.Location, "location", "", "storage location ("+strings.Join(models.Locations, ", ")+")")
	fs.IntVar(&form.Quantity, "quantity", 0, "quantity in stock")
	fs.Float64Var(&form.PurchasedPrice, "purchased-price", 0, "purchase price")
	fs.Float64Var(&form.SellPrice, "sell-price", 0, "sell price")
	fs.StringVar(&form.SupplierName, "supplier-name", "", "supplier name")
	fs.StringVar(&form.SupplierPhone, "supplier-phone", "", "supplier phone (10 digits, starting with 0)")
	fs.StringVar(&form.SupplierEmail, "supplier-email", "", "supplier email")
	fs.Parse(args)

	created, err := c.Create(form)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Inventory item created successfully")
	printItems([]models.InventoryItem{created})
}

func runEdit(c *client.Client, args []string) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	id := fs.String("id", "", "item ID")
	name := fs.String("name", "", "item name")
	location := fs.String("location", "", "storage location")
	quantity := fs.Int("quantity", -1, "quantity in stock")
	purchased := fs.Float64("purchased-price", -1, "purchase price")
	sell := fs.Float64("sell-price", -1, "sell price")
	supplierName := fs.String("supplier-name", "", "supplier name")
	supplierPhone := fs.String("supplier-phone", "", "supplier phone")
	supplierEmail := fs.String("supplier-email", "", "supplier email")
	fs.Parse(args)
	if *id == "" {
		log.Fatal("-id is required")
	}

	patch := repo.ItemPatch{}
	if *name != "" {
		patch.Name = name
	}
	if *location != "" {
		if !models.IsValidLocation(*location) {
			log.Fatal("Location must be one of: ", strings.Join(models.Locations, ", "))
		}
		patch.Location = location
	}
	if *quantity >= 0 {
		patch.Quantity = quantity
	}
	if *purchased >= 0 {
		patch.PurchasedPrice = purchased
	}
	if *sell >= 0 {
		patch.SellPrice = sell
	}
	if *supplierName != "" {
		patch.SupplierName = supplierName
	}
	if *supplierPhone != "" {
		patch.SupplierPhone = supplierPhone
	}
	if *supplierEmail != "" {
		patch.SupplierEmail = supplierEmail
	}

	updated, err := c.Update(*id, patch)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Inventory item updated successfully")
	printItems([]models.InventoryItem{updated})
}

func runDelete(c *client.Client, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "item ID")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)
	if *id == "" {
		log.Fatal("-id is required")
	}

	if !*yes && !confirm(fmt.Sprintf("Delete item %s? You won't be able to revert this!", *id)) {
		return
	}

	if err := c.Delete(*id); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Inventory item deleted successfully")
}

func runAdjustStock(c *client.Client, command string, args []string) {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	id := fs.String("id", "", "item ID")
	qty := fs.Int("qty", 0, "number of units")
	fs.Parse(args)
	if *id == "" {
		log.Fatal("-id is required")
	}

	var (
		updated models.InventoryItem
		err     error
	)
	if command == "add-stock" {
		updated, err = c.AddStock(*id, *qty)
	} else {
		updated, err = c.RetrieveStock(*id, *qty)
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Stock updated, new quantity: %d\n", updated.Quantity)
}

func runReport(c *client.Client, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	format := fs.String("format", "csv", "report format (csv or json)")
	search := fs.String("search", "", "optional search filter")
	fs.Parse(args)

	data, err := c.Report(*format, *search)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(data)
}

func printItems(items []models.InventoryItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tNAME\tLOCATION\tQUANTITY\tPURCHASED\tSELL\tSUPPLIER\tPHONE\tEMAIL")
	for i, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%.2f\t%s\t%s\t%s\n",
			i+1, it.Name, it.Location, it.Quantity, it.PurchasedPrice, it.SellPrice,
			it.SupplierName, it.SupplierPhone, it.SupplierEmail)
	}
	w.Flush()
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// stdinPrompter asks on the terminal whether restock emails should be sent,
// listing the affected items and their suppliers first.
type stdinPrompter struct{}

func (p *stdinPrompter) ConfirmRestock(items []models.InventoryItem) bool {
	fmt.Println("Warning: quantity of the following items is at a low level:")
	for _, it := range items {
		fmt.Printf("  - %s (qty %d), provided by %s\n", it.Name, it.Quantity, it.SupplierEmail)
	}
	return confirm("Send a restock email to the suppliers?")
}
