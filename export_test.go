package main

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	site := buildTestSite(t, "lab", 1, 1)
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	if err := ExportXLSX(path, site); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	vlanRows, err := f.GetRows("VLANs")
	if err != nil {
		t.Fatalf("read VLANs sheet: %v", err)
	}
	// Header plus five SVI bindings (1 + 2 + 2).
	if len(vlanRows) != 6 {
		t.Errorf("VLANs row count = %d, want 6", len(vlanRows))
	}
	if vlanRows[1][0] != "lab-wan-0" || vlanRows[1][4] != "10.0.1.1" {
		t.Errorf("first VLAN row = %v", vlanRows[1])
	}

	routeRows, err := f.GetRows("Routes")
	if err != nil {
		t.Fatalf("read Routes sheet: %v", err)
	}
	// Header plus four routes.
	if len(routeRows) != 5 {
		t.Errorf("Routes row count = %d, want 5", len(routeRows))
	}
	if routeRows[1][1] != "10.0.3.0/24" || routeRows[1][2] != "10.0.1.2" {
		t.Errorf("first route row = %v", routeRows[1])
	}
}
