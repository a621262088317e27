package table

import "time"

type CafeteriaTable struct {
	ID          int    `json:"id"`
	TableNumber int    `json:"table_number"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

type QrCode struct {
	ID          int       `json:"id"`
	TableID     int       `json:"table_id"`
	Data        string    `json:"qr_code_data"`
	GeneratedAt time.Time `json:"generated_at"`
}
