package admin

import "strings"

// NavItem is one entry of the console menu.
type NavItem struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Nav returns the menu under base: Dashboard, Products, Orders, Users and
// Reports.
func Nav(base string) []NavItem {
	base = strings.TrimRight(base, "/")
	return []NavItem{
		{Code: "dashboard", Label: "Dashboard", Path: base + "/"},
		{Code: "products", Label: "Products", Path: base + "/products"},
		{Code: "orders", Label: "Orders", Path: base + "/orders"},
		{Code: "users", Label: "Users", Path: base + "/users"},
		{Code: "reports", Label: "Reports", Path: base + "/reports"},
	}
}
