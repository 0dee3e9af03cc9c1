package netmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inventoryCSV = "INT ID,Source System/ APP,Target System/APP,Interface short Description,Data Payload Description,Country\n" +
	"INT-001,APP-0100 - SAP FICO,APP-0200 - Billing Engine,GL postings,Journal entries,DE\n" +
	"INT-002,APP-0200 - Billing Engine,APP-0300 - CRM,Invoices,,DE\n" +
	"INT-003,APP-0500 - HR Suite,APP-0600 - Payroll,Payslips,Payroll runs,FR\n"

func writeInventory(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interfaces.csv")
	require.NoError(t, os.WriteFile(path, []byte(inventoryCSV), 0644))
	return path
}

func TestGenerate(t *testing.T) {
	outDir := t.TempDir()
	result, err := Generate(Request{
		InputPath: writeInventory(t),
		AppName:   "APP-0100",
		OutputDir: outDir,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "all_app-0100_network.md"), result.OutputFile)
	assert.Equal(t, 3, result.NodeCount)
	assert.Equal(t, 2, result.InterfaceCount)

	content, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	report := string(content)

	assert.Contains(t, report, "# Integration Network Analysis")
	assert.Contains(t, report, "graph TD\n")
	assert.Contains(t, report, `  APP_0100["APP-0100 - SAP FICO"] --"INT-001"--> APP_0200["APP-0200 - Billing Engine"];`)
	assert.Contains(t, report, "  style APP_0100 fill:#007bff")
	// Empty payload cells fall back to the placeholder.
	assert.Contains(t, report, "| DE | INT-002 | Invoices | APP-0200 - Billing Engine | APP-0300 - CRM | N/A |")
	// The HR/Payroll island is not part of the APP-0100 subgraph.
	assert.NotContains(t, report, "APP-0500")
}

func TestGenerate_CountryScope(t *testing.T) {
	outDir := t.TempDir()
	result, err := Generate(Request{
		InputPath: writeInventory(t),
		AppName:   "APP-0500",
		Country:   "fr",
		OutputDir: outDir,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(result.OutputFile, "fr_app-0500_network.md"))
	assert.Equal(t, 2, result.NodeCount)
	assert.Equal(t, 1, result.InterfaceCount)

	content, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "(Scope: FR)")
}

func TestGenerate_EmptyInventory(t *testing.T) {
	result, err := Generate(Request{
		InputPath: writeInventory(t),
		AppName:   "APP-0100",
		Country:   "JP",
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.OutputFile)
	assert.Zero(t, result.NodeCount)
}

func TestGenerate_UnknownApplication(t *testing.T) {
	_, err := Generate(Request{
		InputPath: writeInventory(t),
		AppName:   "APP-9999",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "all_sap_fico_network.md", reportFilename("SAP FICO", "ALL"))
	assert.Equal(t, "de_app-0100_network.md", reportFilename("APP-0100", "DE"))
	assert.Equal(t, "all_ls_network.md", reportFilename("L&S!", "ALL"))
}

func TestTraverse_DepthLabelInReport(t *testing.T) {
	outDir := t.TempDir()
	result, err := Generate(Request{
		InputPath: writeInventory(t),
		AppName:   "APP-0100",
		MaxDepth:  1,
		OutputDir: outDir,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "(Scope: ALL, Depth: 1)")
}
