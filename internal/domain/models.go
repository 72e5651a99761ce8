package domain

import "encoding/json"

type Product struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}

// CartEntry is one line of an in-progress bill. UnitPrice is a snapshot
// of the catalog price at add time and is never re-looked-up.
type CartEntry struct {
	ProductName     string  `json:"product"`
	UnitPrice       float64 `json:"price"`
	Quantity        int     `json:"qty"`      // 1..100
	DiscountPercent int     `json:"discount"` // 0..100
	GSTPercent      int     `json:"gst"`      // 0..50
}

// Bill is immutable once persisted; there is no update or delete path.
type Bill struct {
	BillID       int64   `db:"bill_id"`
	CustomerName string  `db:"customer_name"`
	Phone        string  `db:"phone"`
	Address      string  `db:"address"`
	BillDate     string  `db:"bill_date"` // "2006-01-02 15:04:05"
	Items        string  `db:"items"`     // serialized cart entries, see EncodeItems
	Total        float64 `db:"total"`
}

// EncodeItems serializes cart entries for the bills.items column.
func EncodeItems(entries []CartEntry) (string, error) {
	b, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeItems is the typed read-back path for a stored items blob.
func DecodeItems(items string) ([]CartEntry, error) {
	var out []CartEntry
	if err := json.Unmarshal([]byte(items), &out); err != nil {
		return nil, err
	}
	return out, nil
}
