package platform

import (
	"context"
	"net/url"
)

// CompanySubscription ties a company to a plan for a period.
type CompanySubscription struct {
	ID         string          `json:"_id"`
	Company    AdminCompany    `json:"company"`
	Plan       SubscriptionRef `json:"plan"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Status     string          `json:"status"`
	AutoRenew  bool            `json:"autoRenew"`
	Notes      string          `json:"notes,omitempty"`
	AssignedBy *CreatedBy      `json:"assigned_by,omitempty"`
	IsActive   bool            `json:"isActive,omitempty"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	UpdatedAt  string          `json:"updatedAt,omitempty"`
}

// SubscriptionRef is the embedded plan reference on a subscription.
type SubscriptionRef struct {
	ID       string  `json:"_id"`
	PlanName string  `json:"planName"`
	Price    float64 `json:"price,omitempty"`
	Duration int     `json:"duration,omitempty"`
}

// CompanySubscriptionsResponse is the list envelope for subscriptions.
type CompanySubscriptionsResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    []CompanySubscription `json:"data"`
	Count   int                   `json:"count"`
}

// CompanySubscriptionResponse is the single-record envelope.
type CompanySubscriptionResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    CompanySubscription `json:"data"`
}

// AssignSubscriptionRequest assigns a plan to a company.
type AssignSubscriptionRequest struct {
	Company   string `json:"company"`
	Plan      string `json:"plan"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate"`
	AutoRenew bool   `json:"autoRenew,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateSubscriptionRequest mutates a subscription. Empty fields stay
// untouched server-side.
type UpdateSubscriptionRequest struct {
	EndDate   string `json:"endDate,omitempty"`
	Status    string `json:"status,omitempty"`
	AutoRenew *bool  `json:"autoRenew,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// SubscriptionFilter narrows a subscription listing.
type SubscriptionFilter struct {
	Status    string
	CompanyID string
}

// AssignSubscription assigns a plan to a company.
func (c *Client) AssignSubscription(ctx context.Context, in AssignSubscriptionRequest) (*CompanySubscriptionResponse, error) {
	var resp CompanySubscriptionResponse
	if err := c.post(ctx, "/api/company-subscriptions/assign", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Subscriptions lists company subscriptions, optionally filtered by
// status and company.
func (c *Client) Subscriptions(ctx context.Context, filter SubscriptionFilter) (*CompanySubscriptionsResponse, error) {
	params := url.Values{}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.CompanyID != "" {
		params.Set("company", filter.CompanyID)
	}
	path := "/api/company-subscriptions"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var resp CompanySubscriptionsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Subscription fetches a subscription by id.
func (c *Client) Subscription(ctx context.Context, id string) (*CompanySubscriptionResponse, error) {
	var resp CompanySubscriptionResponse
	if err := c.get(ctx, "/api/company-subscriptions/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubscriptionByCompany fetches the subscription for a given company.
func (c *Client) SubscriptionByCompany(ctx context.Context, companyID string) (*CompanySubscriptionResponse, error) {
	var resp CompanySubscriptionResponse
	if err := c.get(ctx, "/api/company-subscriptions/company/"+companyID, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateSubscription updates a subscription over PUT.
func (c *Client) UpdateSubscription(ctx context.Context, id string, in UpdateSubscriptionRequest) (*CompanySubscriptionResponse, error) {
	var resp CompanySubscriptionResponse
	if err := c.put(ctx, "/api/company-subscriptions/"+id, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSubscription removes a subscription.
func (c *Client) DeleteSubscription(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.delete(ctx, "/api/company-subscriptions/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
