package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func success(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, color.New(color.FgGreen).Render(fmt.Sprintf(format, args...)))
}

func failure(out io.Writer, err error) {
	fmt.Fprintln(out, color.New(color.FgRed, color.OpBold).Render("error: "+err.Error()))
}

func star(favorite bool) string {
	if favorite {
		return color.New(color.FgYellow).Render("★")
	}
	return ""
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func when(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
