package report

type SalesRow struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

type DemandRow struct {
	ItemName      string `json:"name"`
	TotalQuantity int    `json:"total_quantity"`
}

type Report struct {
	SalesReport  []SalesRow  `json:"sales_report"`
	DemandTrends []DemandRow `json:"demand_trends"`
}
