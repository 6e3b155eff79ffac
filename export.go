package main

import (
	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the addressing plan workbook: a VLANs sheet with every
// SVI binding and a Routes sheet with every routing table entry.
func ExportXLSX(path string, site *Site) error {
	f := excelize.NewFile()
	defer f.Close()

	vlanSheet := "VLANs"
	f.SetSheetName("Sheet1", vlanSheet)
	writeSheetRows(f, vlanSheet, buildVLANSheet(site))

	routeSheet := "Routes"
	f.NewSheet(routeSheet)
	writeSheetRows(f, routeSheet, buildRouteSheet(site))

	return f.SaveAs(path)
}

func buildVLANSheet(site *Site) [][]interface{} {
	out := [][]interface{}{{"device", "role", "vlan", "subnet", "address"}}
	for _, dev := range site.Devices() {
		for _, svi := range dev.SVIs {
			out = append(out, []interface{}{
				dev.Name, string(dev.Role), svi.VLAN.ID, svi.VLAN.Prefix.String(), svi.Addr.String(),
			})
		}
	}
	return out
}

func buildRouteSheet(site *Site) [][]interface{} {
	out := [][]interface{}{{"device", "destination", "next_hop"}}
	for _, dev := range site.Devices() {
		for _, r := range dev.Table.Routes() {
			out = append(out, []interface{}{dev.Name, r.Dest.String(), r.NextHop.String()})
		}
	}
	return out
}

func writeSheetRows(f *excelize.File, sheet string, rows [][]interface{}) {
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		_ = f.SetSheetRow(sheet, cell, &row)
	}
}
