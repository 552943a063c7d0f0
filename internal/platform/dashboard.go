package platform

import "context"

// DashboardSummary is the headline numbers block.
type DashboardSummary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	ActiveRevenue  float64 `json:"activeRevenue"`
	TotalBalance   float64 `json:"totalBalance"`
	ActiveClients  int     `json:"activeClients"`
	TotalCompanies int     `json:"totalCompanies"`
	ReturnsFiled   int     `json:"returnsFiled"`
	TaxSaved       float64 `json:"taxSaved"`
}

// DashboardKPI is a single pre-rendered KPI card.
type DashboardKPI struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
	Icon   string `json:"icon"`
}

// SubscriptionStats breaks subscriptions down by status.
type SubscriptionStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Expired   int `json:"expired"`
	Cancelled int `json:"cancelled"`
	Suspended int `json:"suspended"`
	Revenue   struct {
		Total   float64 `json:"total"`
		Active  float64 `json:"active"`
		Expired float64 `json:"expired"`
	} `json:"revenue"`
}

// CompanyStats breaks companies down by status and coverage.
type CompanyStats struct {
	Total               int `json:"total"`
	Active              int `json:"active"`
	Inactive            int `json:"inactive"`
	Suspended           int `json:"suspended"`
	WithSubscription    int `json:"withSubscription"`
	WithoutSubscription int `json:"withoutSubscription"`
}

// RoleCount is an active/total pair for one user role.
type RoleCount struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// UserStats breaks platform users down by role.
type UserStats struct {
	Admins    RoleCount `json:"admins"`
	HR        RoleCount `json:"hr"`
	Employees RoleCount `json:"employees"`
	Total     int       `json:"total"`
}

// CompanyBalance is one row of the per-company balance table.
type CompanyBalance struct {
	CompanyID    string  `json:"companyId"`
	CompanyName  string  `json:"companyName"`
	CompanyEmail string  `json:"companyEmail"`
	Status       string  `json:"status"`
	Balance      float64 `json:"balance"`
	LedgerCount  int     `json:"ledgerCount"`
	VoucherCount int     `json:"voucherCount"`
	Subscription *struct {
		PlanName string `json:"planName"`
		Status   string `json:"status"`
		IsActive bool   `json:"isActive"`
		EndDate  string `json:"endDate"`
	} `json:"subscription"`
}

// RevenueTrend is one month of the revenue series.
type RevenueTrend struct {
	Month         string  `json:"month"`
	Revenue       float64 `json:"revenue"`
	Subscriptions int     `json:"subscriptions"`
}

// ServiceDistribution is one slice of the service usage breakdown.
type ServiceDistribution struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// RecentTransaction is one row of the recent voucher activity feed.
type RecentTransaction struct {
	VoucherNumber string  `json:"voucherNumber"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Company       string  `json:"company"`
}

// PlanSummary is the abbreviated plan view on the dashboard.
type PlanSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	IsActive bool    `json:"isActive"`
}

// PlansData groups the plan summaries with their counts.
type PlansData struct {
	Total  int           `json:"total"`
	Active int           `json:"active"`
	List   []PlanSummary `json:"list"`
}

// DashboardData is the full dashboard payload.
type DashboardData struct {
	Summary             DashboardSummary      `json:"summary"`
	KPIs                []DashboardKPI        `json:"kpis"`
	Subscriptions       SubscriptionStats     `json:"subscriptions"`
	Companies           CompanyStats          `json:"companies"`
	Users               UserStats             `json:"users"`
	CompanyBalances     []CompanyBalance      `json:"companyBalances"`
	RevenueTrend        []RevenueTrend        `json:"revenueTrend"`
	ServiceDistribution []ServiceDistribution `json:"serviceDistribution"`
	RecentTransactions  []RecentTransaction   `json:"recentTransactions"`
	Plans               PlansData             `json:"plans"`
}

// DashboardResponse is the dashboard envelope.
type DashboardResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    DashboardData `json:"data"`
}

// Dashboard fetches the super admin dashboard payload.
func (c *Client) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var resp DashboardResponse
	if err := c.get(ctx, "/api/superadmin/dashboard", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
