package platform

import (
	"context"
	"strconv"
)

// SubscriptionPlan is a billing plan offered to companies.
type SubscriptionPlan struct {
	ID           string     `json:"_id"`
	PlanName     string     `json:"planName"`
	Description  string     `json:"description,omitempty"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	Duration     int        `json:"duration"`
	Features     []string   `json:"features,omitempty"`
	MaxEmployees *int       `json:"maxEmployees,omitempty"`
	MaxAdmins    int        `json:"maxAdmins,omitempty"`
	IsActive     bool       `json:"isActive"`
	CreatedBy    *CreatedBy `json:"created_by,omitempty"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

// SubscriptionPlansResponse is the list envelope for plans.
type SubscriptionPlansResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    []SubscriptionPlan `json:"data"`
	Count   int                `json:"count"`
}

// SubscriptionPlanResponse is the single-record envelope for a plan.
type SubscriptionPlanResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    SubscriptionPlan `json:"data"`
}

// CreatePlanRequest carries the fields for creating or updating a plan.
// Duration is in months.
type CreatePlanRequest struct {
	PlanName     string   `json:"planName"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency,omitempty"`
	Duration     int      `json:"duration"`
	Features     []string `json:"features,omitempty"`
	MaxEmployees *int     `json:"maxEmployees,omitempty"`
	MaxAdmins    int      `json:"maxAdmins,omitempty"`
	IsActive     *bool    `json:"isActive,omitempty"`
}

// CreatePlan creates a subscription plan.
func (c *Client) CreatePlan(ctx context.Context, in CreatePlanRequest) (*SubscriptionPlanResponse, error) {
	var resp SubscriptionPlanResponse
	if err := c.post(ctx, "/api/subscription-plans/create", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Plans lists subscription plans. A non-nil isActive filters by
// activation state.
func (c *Client) Plans(ctx context.Context, isActive *bool) (*SubscriptionPlansResponse, error) {
	path := "/api/subscription-plans"
	if isActive != nil {
		path += "?isActive=" + strconv.FormatBool(*isActive)
	}
	var resp SubscriptionPlansResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Plan fetches a single plan by id.
func (c *Client) Plan(ctx context.Context, id string) (*SubscriptionPlanResponse, error) {
	var resp SubscriptionPlanResponse
	if err := c.get(ctx, "/api/subscription-plans/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePlan updates a plan over PUT.
func (c *Client) UpdatePlan(ctx context.Context, id string, in CreatePlanRequest) (*SubscriptionPlanResponse, error) {
	var resp SubscriptionPlanResponse
	if err := c.put(ctx, "/api/subscription-plans/"+id, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeletePlan deletes a plan.
func (c *Client) DeletePlan(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.delete(ctx, "/api/subscription-plans/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
