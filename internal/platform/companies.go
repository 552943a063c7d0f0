package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// CompanyAddress is the structured postal address of a company.
type CompanyAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// Company is a tenant company record.
type Company struct {
	ID         string         `json:"_id"`
	Name       string         `json:"company_name"`
	Email      string         `json:"company_email"`
	Phone      string         `json:"company_phone"`
	Address    CompanyAddress `json:"company_address"`
	Logo       string         `json:"company_logo,omitempty"`
	Website    string         `json:"company_website,omitempty"`
	GSTNumber  string         `json:"gstNumber,omitempty"`
	FiscalYear string         `json:"fiscalYear,omitempty"`
	Industry   string         `json:"industry,omitempty"`
	Status     string         `json:"status"`
	CreatedBy  *CreatedBy     `json:"created_by,omitempty"`
	CreatedAt  string         `json:"createdAt"`
	UpdatedAt  string         `json:"updatedAt"`
}

// CreatedBy identifies the super admin who created a record.
type CreatedBy struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CompaniesResponse is the list envelope for companies.
type CompaniesResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    []Company `json:"data"`
	Count   int       `json:"count"`
}

// CompanyResponse is the single-record envelope for a company.
type CompanyResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    Company `json:"data"`
}

// CreateCompanyRequest carries the fields for company onboarding. The
// create endpoint is multipart so a logo file can ride along; Address is
// serialized as a JSON field inside the form.
type CreateCompanyRequest struct {
	Name                   string
	Email                  string
	Phone                  string
	Address                CompanyAddress
	Website                string
	GSTNumber              string
	FiscalYear             string
	Industry               string
	ConstitutionOfBusiness string

	// LogoName and Logo are the optional logo upload. When Logo is nil
	// the form carries no file part.
	LogoName string
	Logo     io.Reader
}

// UpdateCompanyRequest carries the mutable fields for a company update.
type UpdateCompanyRequest struct {
	Name    string         `json:"company_name"`
	Email   string         `json:"company_email"`
	Phone   string         `json:"company_phone"`
	Address CompanyAddress `json:"company_address"`
	Website string         `json:"company_website,omitempty"`
	Logo    string         `json:"company_logo,omitempty"`
}

// Companies lists all tenant companies.
func (c *Client) Companies(ctx context.Context) (*CompaniesResponse, error) {
	var resp CompaniesResponse
	if err := c.get(ctx, "/api/companies", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Company fetches a single company by id.
func (c *Client) Company(ctx context.Context, id string) (*CompanyResponse, error) {
	var resp CompanyResponse
	if err := c.get(ctx, "/api/companies/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateCompany onboards a new company. The request is multipart
// form-data: required identity fields, the address as a JSON-encoded
// field, optional descriptive fields only when set, and an optional
// logo file part.
func (c *Client) CreateCompany(ctx context.Context, in CreateCompanyRequest) (*CompanyResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"company_name":  in.Name,
		"company_email": in.Email,
		"company_phone": in.Phone,
	}
	addr, err := json.Marshal(in.Address)
	if err != nil {
		return nil, fmt.Errorf("marshal address: %w", err)
	}
	fields["company_address"] = string(addr)

	optional := map[string]string{
		"company_website":          in.Website,
		"gstNumber":                in.GSTNumber,
		"fiscalYear":               in.FiscalYear,
		"industry":                 in.Industry,
		"constitution_of_business": in.ConstitutionOfBusiness,
	}
	for name, value := range optional {
		if value != "" {
			fields[name] = value
		}
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	if in.Logo != nil {
		name := in.LogoName
		if name == "" {
			name = "logo"
		}
		part, err := w.CreateFormFile("company_logo", filepath.Base(name))
		if err != nil {
			return nil, fmt.Errorf("create logo part: %w", err)
		}
		if _, err := io.Copy(part, in.Logo); err != nil {
			return nil, fmt.Errorf("copy logo: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/companies/create", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var resp CompanyResponse
	if err := c.send(req, &resp, requestOptions{}); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCompany updates a company. The platform takes updates over POST
// on the record path.
func (c *Client) UpdateCompany(ctx context.Context, id string, in UpdateCompanyRequest) (*CompanyResponse, error) {
	var resp CompanyResponse
	if err := c.post(ctx, "/api/companies/"+id, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCompany removes a company. Deletion is a POST on the /delete
// subpath, not an HTTP DELETE.
func (c *Client) DeleteCompany(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.post(ctx, "/api/companies/"+id+"/delete", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
