package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	models "github.com/nadeekaauto/parts-inventory/internal/models"
	repo "github.com/nadeekaauto/parts-inventory/internal/repo"
)

// ErrNotFound is returned when the server reports no record for the given ID.
var ErrNotFound = errors.New("inventory item not found")

// ErrDuplicateName is returned when a create or rename collides with an
// existing item name, either via the best-effort pre-check or the server's
// conflict response.
var ErrDuplicateName = errors.New("inventory item with the same name already exists")

// APIError is a non-2xx response from the server that is not a not-found or
// duplicate-name condition.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client is the data layer the pages talk through. It holds no cache; every
// call re-fetches from the server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type itemsEnvelope struct {
	Data []models.InventoryItem `json:"data"`
}

func (c *Client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode == http.StatusConflict {
		return ErrDuplicateName
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// List fetches all items, or the items whose displayed columns contain search.
func (c *Client) List(search string) ([]models.InventoryItem, error) {
	path := "/inventory"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var envelope itemsEnvelope
	if err := c.do(http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *Client) Get(id string) (models.InventoryItem, error) {
	var item models.InventoryItem
	err := c.do(http.MethodGet, "/inventory/"+url.PathEscape(id), nil, &item)
	return item, err
}

// Create validates the form, runs the best-effort duplicate pre-check against
// the exact-name filter, and posts the item. The store's unique index is the
// authoritative check; the pre-check only gives a friendlier early failure.
func (c *Client) Create(form ItemForm) (models.InventoryItem, error) {
	if err := ValidateForm(form); err != nil {
		return models.InventoryItem{}, err
	}

	name := strings.ToUpper(form.Name)
	var envelope itemsEnvelope
	if err := c.do(http.MethodGet, "/inventory?Name="+url.QueryEscape(name), nil, &envelope); err == nil {
		if len(envelope.Data) > 0 {
			return models.InventoryItem{}, ErrDuplicateName
		}
	}

	payload := models.InventoryItem{
		Name:           name,
		Location:       form.Location,
		Quantity:       form.Quantity,
		PurchasedPrice: form.PurchasedPrice,
		SellPrice:      form.SellPrice,
		SupplierName:   form.SupplierName,
		SupplierPhone:  form.SupplierPhone,
		SupplierEmail:  form.SupplierEmail,
	}
	var created models.InventoryItem
	err := c.do(http.MethodPost, "/inventory", payload, &created)
	return created, err
}

// Update merges the supplied fields into the stored record. The same policy
// that gates a create gates an edit: the record as it would look after the
// merge is validated first, so a violating patch never reaches the network.
func (c *Client) Update(id string, patch repo.ItemPatch) (models.InventoryItem, error) {
	current, err := c.Get(id)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if err := ValidateForm(mergedForm(current, patch)); err != nil {
		return models.InventoryItem{}, err
	}

	var updated models.InventoryItem
	err = c.do(http.MethodPut, "/inventory/"+url.PathEscape(id), patch, &updated)
	return updated, err
}

// mergedForm overlays a patch onto the stored record, yielding the form state
// the edit page would be submitting.
func mergedForm(item models.InventoryItem, patch repo.ItemPatch) ItemForm {
	form := ItemForm{
		Name:           item.Name,
		Location:       item.Location,
		Quantity:       item.Quantity,
		PurchasedPrice: item.PurchasedPrice,
		SellPrice:      item.SellPrice,
		SupplierName:   item.SupplierName,
		SupplierPhone:  item.SupplierPhone,
		SupplierEmail:  item.SupplierEmail,
	}
	if patch.Name != nil {
		form.Name = *patch.Name
	}
	if patch.Location != nil {
		form.Location = *patch.Location
	}
	if patch.Quantity != nil {
		form.Quantity = *patch.Quantity
	}
	if patch.PurchasedPrice != nil {
		form.PurchasedPrice = *patch.PurchasedPrice
	}
	if patch.SellPrice != nil {
		form.SellPrice = *patch.SellPrice
	}
	if patch.SupplierName != nil {
		form.SupplierName = *patch.SupplierName
	}
	if patch.SupplierPhone != nil {
		form.SupplierPhone = *patch.SupplierPhone
	}
	if patch.SupplierEmail != nil {
		form.SupplierEmail = *patch.SupplierEmail
	}
	return form
}

func (c *Client) Delete(id string) error {
	return c.do(http.MethodDelete, "/inventory/"+url.PathEscape(id), nil, nil)
}

// AddStock raises an item's quantity by n via a partial update, the way the
// add-stock page does: read the current quantity, then PUT the new value.
func (c *Client) AddStock(id string, n int) (models.InventoryItem, error) {
	if n <= 0 {
		return models.InventoryItem{}, ValidationErrors{{Field: "Quantity", Message: "stock amount must be a positive number"}}
	}
	item, err := c.Get(id)
	if err != nil {
		return models.InventoryItem{}, err
	}
	quantity := item.Quantity + n
	return c.Update(id, repo.ItemPatch{Quantity: &quantity})
}

// RetrieveStock takes n units out of stock. The quantity can never go negative.
func (c *Client) RetrieveStock(id string, n int) (models.InventoryItem, error) {
	if n <= 0 {
		return models.InventoryItem{}, ValidationErrors{{Field: "Quantity", Message: "stock amount must be a positive number"}}
	}
	item, err := c.Get(id)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if n > item.Quantity {
		return models.InventoryItem{}, ValidationErrors{{Field: "Quantity", Message: "cannot retrieve more than the current quantity"}}
	}
	quantity := item.Quantity - n
	return c.Update(id, repo.ItemPatch{Quantity: &quantity})
}

// Report downloads the printable inventory report in the given format.
func (c *Client) Report(format, search string) ([]byte, error) {
	path := "/inventory/report?format=" + url.QueryEscape(format)
	if search != "" {
		path += "&search=" + url.QueryEscape(search)
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	return io.ReadAll(resp.Body)
}
