package ux

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sdtaxation/adminctl/internal/platform"
)

func TestNewFormatterSelection(t *testing.T) {
	tests := []struct {
		format  string
		want    Formatter
		wantErr bool
	}{
		{format: "json", want: &JSONFormatter{}},
		{format: "yaml", want: &YAMLFormatter{}},
		{format: "text", want: &TextFormatter{}},
		{format: "", want: &TextFormatter{}},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := NewFormatter(tt.format, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}
}

func TestJSONFormatterOutput(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(platform.Company{ID: "c1", Name: "Acme Tax LLP", Status: "active"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Acme Tax LLP", got["company_name"])
}

func TestYAMLFormatterOutput(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("yaml", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(map[string]string{"plan": "Pro"}))

	var got map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Pro", got["plan"])
}

func TestTextFormatterRequiresStringer(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format("plain string"))
	assert.Contains(t, buf.String(), "plain string")

	assert.Error(t, f.Format(struct{ X int }{1}))
}

func TestCompanyTableRendering(t *testing.T) {
	table := CompanyTable{
		{ID: "c1", Name: "Acme Tax LLP", Email: "ops@acme.in", Phone: "+91-9000000000", Status: "active"},
		{ID: "c2", Name: "Beta", Email: "ops@beta.in", Phone: "+91-9111111111", Status: "suspended"},
	}
	out := table.String()
	assert.Contains(t, out, "Acme Tax LLP")
	assert.Contains(t, out, "suspended")
	assert.Contains(t, out, "NAME")

	assert.Contains(t, CompanyTable{}.String(), "no companies")
}

func TestPlanTableRendering(t *testing.T) {
	table := PlanTable{
		{ID: "p1", PlanName: "Pro", Price: 4999, Currency: "INR", Duration: 12, IsActive: true},
	}
	out := table.String()
	assert.Contains(t, out, "Pro")
	assert.Contains(t, out, "4999.00 INR")
	assert.Contains(t, out, "12 mo")
}
