package admin

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tile codes in display order.
const (
	TileTotalSales    = "total_sales"
	TileTotalOrders   = "total_orders"
	TileTotalUsers    = "total_users"
	TileNotifications = "notifications"
)

// Tile is one dashboard summary card.
type Tile struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Value string `json:"value"`
}

var tilePrinter = message.NewPrinter(language.English)

// Tiles summarizes the live workspace: revenue across every order, order
// and user counts, and activity since the session started.
func (w *Workspace) Tiles() []Tile {
	records := w.Orders.Records()
	var sales float64
	for _, order := range records {
		sales += order.Total
	}
	notifications := w.feed.CountSince(w.startedAt)
	return []Tile{
		{Code: TileTotalSales, Title: "Total Sales", Value: tilePrinter.Sprintf("$%.2f", sales)},
		{Code: TileTotalOrders, Title: "Total Orders", Value: tilePrinter.Sprintf("%d", len(records))},
		{Code: TileTotalUsers, Title: "Total Users", Value: tilePrinter.Sprintf("%d", w.Users.Store().Len())},
		{Code: TileNotifications, Title: "Notifications", Value: tilePrinter.Sprintf("%d new", notifications)},
	}
}
