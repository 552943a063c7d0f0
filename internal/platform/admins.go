package platform

import "context"

// Admin is a company administrator account.
type Admin struct {
	ID         string        `json:"_id"`
	FullName   string        `json:"fullname"`
	Username   string        `json:"username"`
	Email      string        `json:"email"`
	Role       string        `json:"role"`
	Phone      string        `json:"phone"`
	Department string        `json:"department"`
	AdminArea  string        `json:"adminArea"`
	Company    *AdminCompany `json:"company,omitempty"`
	Status     string        `json:"status"`
	LastLogin  string        `json:"lastLogin,omitempty"`
	CreatedAt  string        `json:"createdAt"`
	UpdatedAt  string        `json:"updatedAt"`
}

// AdminCompany is the embedded company reference on an admin record.
type AdminCompany struct {
	ID    string `json:"_id"`
	Name  string `json:"company_name"`
	Email string `json:"company_email,omitempty"`
}

// AdminsResponse is the list envelope for admins.
type AdminsResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    []Admin `json:"data"`
}

// AdminResponse is the single-record envelope for an admin.
type AdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Admin  `json:"data"`
}

// CreateAdminRequest carries the fields for creating a company admin.
type CreateAdminRequest struct {
	FullName         string `json:"fullname"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	Password         string `json:"password"`
	OriginalPassword string `json:"originalPassword"`
	Phone            string `json:"phone"`
	Department       string `json:"department"`
	AdminArea        string `json:"adminArea"`
	Company          string `json:"company"`
}

// UpdateAdminRequest carries the mutable admin fields. Empty fields are
// omitted so the server only touches what was set.
type UpdateAdminRequest struct {
	FullName   string `json:"fullname,omitempty"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	AdminArea  string `json:"adminArea,omitempty"`
	Company    string `json:"company,omitempty"`
}

// CreateAdmin creates a company administrator.
func (c *Client) CreateAdmin(ctx context.Context, in CreateAdminRequest) (*AdminResponse, error) {
	var resp AdminResponse
	if err := c.post(ctx, "/api/superadmin/create-admin", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Admins lists all company administrators.
func (c *Client) Admins(ctx context.Context) (*AdminsResponse, error) {
	var resp AdminsResponse
	if err := c.get(ctx, "/api/superadmin/admins", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAdmin updates an administrator. Updates go over POST on the
// update-admin subpath.
func (c *Client) UpdateAdmin(ctx context.Context, id string, in UpdateAdminRequest) (*AdminResponse, error) {
	var resp AdminResponse
	if err := c.post(ctx, "/api/superadmin/update-admin/"+id, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAdmin removes an administrator via POST on the delete-admin
// subpath.
func (c *Client) DeleteAdmin(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.post(ctx, "/api/superadmin/delete-admin/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
