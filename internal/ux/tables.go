package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sdtaxation/adminctl/internal/platform"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// statusCell colors a status value for terminal output.
func statusCell(status string) string {
	switch strings.ToLower(status) {
	case "active":
		return activeStyle.Render(status)
	case "expired", "suspended", "cancelled", "inactive":
		return dangerStyle.Render(status)
	default:
		return status
	}
}

// renderTable lays out rows under a styled header with per-column
// widths sized to content.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// CompanyTable renders a company listing as text.
type CompanyTable []platform.Company

func (t CompanyTable) String() string {
	if len(t) == 0 {
		return dimStyle.Render("no companies")
	}
	rows := make([][]string, 0, len(t))
	for _, c := range t {
		rows = append(rows, []string{c.ID, c.Name, c.Email, c.Phone, statusCell(c.Status)})
	}
	return renderTable([]string{"ID", "NAME", "EMAIL", "PHONE", "STATUS"}, rows)
}

// AdminTable renders an admin listing as text.
type AdminTable []platform.Admin

func (t AdminTable) String() string {
	if len(t) == 0 {
		return dimStyle.Render("no admins")
	}
	rows := make([][]string, 0, len(t))
	for _, a := range t {
		company := ""
		if a.Company != nil {
			company = a.Company.Name
		}
		rows = append(rows, []string{a.ID, a.FullName, a.Email, a.Role, company, statusCell(a.Status)})
	}
	return renderTable([]string{"ID", "NAME", "EMAIL", "ROLE", "COMPANY", "STATUS"}, rows)
}

// PlanTable renders a subscription-plan listing as text.
type PlanTable []platform.SubscriptionPlan

func (t PlanTable) String() string {
	if len(t) == 0 {
		return dimStyle.Render("no subscription plans")
	}
	rows := make([][]string, 0, len(t))
	for _, p := range t {
		active := dangerStyle.Render("inactive")
		if p.IsActive {
			active = activeStyle.Render("active")
		}
		rows = append(rows, []string{
			p.ID,
			p.PlanName,
			fmt.Sprintf("%.2f %s", p.Price, p.Currency),
			fmt.Sprintf("%d mo", p.Duration),
			active,
		})
	}
	return renderTable([]string{"ID", "PLAN", "PRICE", "DURATION", "STATUS"}, rows)
}

// SubscriptionTable renders a company-subscription listing as text.
type SubscriptionTable []platform.CompanySubscription

func (t SubscriptionTable) String() string {
	if len(t) == 0 {
		return dimStyle.Render("no subscriptions")
	}
	rows := make([][]string, 0, len(t))
	for _, s := range t {
		rows = append(rows, []string{s.ID, s.Company.Name, s.Plan.PlanName, s.StartDate, s.EndDate, statusCell(s.Status)})
	}
	return renderTable([]string{"ID", "COMPANY", "PLAN", "START", "END", "STATUS"}, rows)
}

// DashboardSummaryView renders the dashboard headline numbers as text.
type DashboardSummaryView platform.DashboardData

func (v DashboardSummaryView) String() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Platform overview"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  Companies        %d (%d active)\n", v.Companies.Total, v.Companies.Active)
	fmt.Fprintf(&b, "  Subscriptions    %d (%d active)\n", v.Subscriptions.Total, v.Subscriptions.Active)
	fmt.Fprintf(&b, "  Users            %d\n", v.Users.Total)
	fmt.Fprintf(&b, "  Total revenue    %.2f\n", v.Summary.TotalRevenue)
	fmt.Fprintf(&b, "  Active revenue   %.2f\n", v.Summary.ActiveRevenue)
	fmt.Fprintf(&b, "  Returns filed    %d\n", v.Summary.ReturnsFiled)
	fmt.Fprintf(&b, "  Tax saved        %.2f", v.Summary.TaxSaved)
	return b.String()
}
