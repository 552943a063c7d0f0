package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSendsCredentialsWithoutAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/superadmin/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "root@sdtaxation.com", body.Email)
		assert.Equal(t, "s3cret", body.Password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "login successful",
			"data": {"id": "u1", "name": "Root", "email": "root@sdtaxation.com"},
			"token": "jwt-token"
		}`))
	}))
	defer srv.Close()

	// A dead stored token must never block login.
	c := NewClient(srv.URL, &fakeCreds{token: "stale", expired: true})
	resp, err := c.Login(context.Background(), "root@sdtaxation.com", "s3cret")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "u1", resp.Data.ID)
	assert.Equal(t, "Root", resp.Data.Name)
}

func TestProfileAndLogoutRouting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/superadmin/profile":
			require.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"id":"u1","name":"Root","email":"root@sdtaxation.com"}}`))
		case "/api/superadmin/logout":
			require.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(`{"success":true,"message":"logged out"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeCreds{token: "tok"})

	profile, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "root@sdtaxation.com", profile.Data.Email)

	out, err := c.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "logged out", out.Message)
}

func TestCreateCompanyMultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/companies/create", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Acme Tax LLP", r.FormValue("company_name"))
		assert.Equal(t, "billing@acme.in", r.FormValue("company_email"))
		assert.Equal(t, "+91-9000000000", r.FormValue("company_phone"))
		assert.Equal(t, "Goods", r.FormValue("industry"))
		assert.Empty(t, r.FormValue("gstNumber"), "unset optional fields stay out of the form")

		var addr CompanyAddress
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("company_address")), &addr))
		assert.Equal(t, "Pune", addr.City)
		assert.Equal(t, "411001", addr.ZipCode)

		file, header, err := r.FormFile("company_logo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"created","data":{"_id":"c1","company_name":"Acme Tax LLP","status":"active"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeCreds{token: "tok"})
	resp, err := c.CreateCompany(context.Background(), CreateCompanyRequest{
		Name:  "Acme Tax LLP",
		Email: "billing@acme.in",
		Phone: "+91-9000000000",
		Address: CompanyAddress{
			Street:  "1 MG Road",
			City:    "Pune",
			State:   "MH",
			Country: "IN",
			ZipCode: "411001",
		},
		Industry: "Goods",
		LogoName: "logo.png",
		Logo:     strings.NewReader("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "c1", resp.Data.ID)
}

func TestCreateCompanyWithoutLogoOmitsFilePart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("company_logo")
		assert.Error(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"created","data":{"_id":"c2","status":"active"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeCreds{token: "tok"})
	_, err := c.CreateCompany(context.Background(), CreateCompanyRequest{
		Name:  "No Logo Ltd",
		Email: "ops@nologo.in",
		Phone: "+91-9111111111",
	})
	require.NoError(t, err)
}

func TestResourceRouting(t *testing.T) {
	type call struct {
		method string
		path   string
		query  string
	}
	var got call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = call{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeCreds{token: "tok"})
	ctx := context.Background()
	active := true

	tests := []struct {
		name string
		do   func() error
		want call
	}{
		{
			name: "update company posts on record path",
			do: func() error {
				_, err := c.UpdateCompany(ctx, "c1", UpdateCompanyRequest{Name: "Renamed"})
				return err
			},
			want: call{method: http.MethodPost, path: "/api/companies/c1"},
		},
		{
			name: "delete company posts on delete subpath",
			do: func() error {
				_, err := c.DeleteCompany(ctx, "c1")
				return err
			},
			want: call{method: http.MethodPost, path: "/api/companies/c1/delete"},
		},
		{
			name: "delete admin posts on delete-admin subpath",
			do: func() error {
				_, err := c.DeleteAdmin(ctx, "a1")
				return err
			},
			want: call{method: http.MethodPost, path: "/api/superadmin/delete-admin/a1"},
		},
		{
			name: "plans filter by active flag",
			do: func() error {
				_, err := c.Plans(ctx, &active)
				return err
			},
			want: call{method: http.MethodGet, path: "/api/subscription-plans", query: "isActive=true"},
		},
		{
			name: "update plan uses PUT",
			do: func() error {
				_, err := c.UpdatePlan(ctx, "p1", CreatePlanRequest{PlanName: "Pro"})
				return err
			},
			want: call{method: http.MethodPut, path: "/api/subscription-plans/p1"},
		},
		{
			name: "subscriptions filter by status and company",
			do: func() error {
				_, err := c.Subscriptions(ctx, SubscriptionFilter{Status: "active", CompanyID: "c9"})
				return err
			},
			want: call{method: http.MethodGet, path: "/api/company-subscriptions", query: "company=c9&status=active"},
		},
		{
			name: "subscription by company",
			do: func() error {
				_, err := c.SubscriptionByCompany(ctx, "c9")
				return err
			},
			want: call{method: http.MethodGet, path: "/api/company-subscriptions/company/c9"},
		},
		{
			name: "delete subscription uses DELETE",
			do: func() error {
				_, err := c.DeleteSubscription(ctx, "s1")
				return err
			},
			want: call{method: http.MethodDelete, path: "/api/company-subscriptions/s1"},
		},
		{
			name: "dashboard",
			do: func() error {
				_, err := c.Dashboard(ctx)
				return err
			},
			want: call{method: http.MethodGet, path: "/api/superadmin/dashboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.do())
			assert.Equal(t, tt.want, got)
		})
	}
}
