package bot

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"oakbot/domain"
	"oakbot/observability"
)

// newTable applies the borderless monospace style used for chat replies.
func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	return table
}

// RenderRecord lists every stored set for one Pokemon.
func RenderRecord(record domain.SetRecord) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s's sets\n\n", record.Pokemon)

	table := newTable(&buf)
	table.SetHeader([]string{"#", "Item", "Moves"})
	for i, set := range record.Sets {
		table.Append([]string{
			strconv.Itoa(i + 1),
			set.Item,
			strings.Join(set.Moves, " / "),
		})
	}
	table.Render()
	return buf.String()
}

// RenderOwnerList summarizes every record an owner holds.
func RenderOwnerList(records []domain.SetRecord) string {
	if len(records) == 0 {
		return "You have not stored any sets yet. Use /set to add one."
	}

	var buf bytes.Buffer
	buf.WriteString("Your stored sets\n\n")

	table := newTable(&buf)
	table.SetHeader([]string{"Dex", "Pokemon", "Sets"})
	for _, record := range records {
		table.Append([]string{
			fmt.Sprintf("#%04d", record.DexID),
			record.Pokemon,
			strconv.Itoa(len(record.Sets)),
		})
	}
	table.Render()
	return buf.String()
}

// RenderStatus formats the admin status snapshot.
func RenderStatus(snap observability.Snapshot) string {
	var buf bytes.Buffer
	table := newTable(&buf)
	table.Append([]string{"PID", strconv.Itoa(snap.PID)})
	table.Append([]string{"Status", snap.PIDStatus})
	table.Append([]string{"Uptime", snap.Uptime.String()})
	table.Append([]string{"RSS", fmt.Sprintf("%d MB", snap.RSSBytes/1024/1024)})
	table.Append([]string{"CPU", fmt.Sprintf("%.1f%%", snap.CPUPercent)})
	table.Append([]string{"Records", strconv.Itoa(snap.Records)})
	table.Append([]string{"Sets", strconv.Itoa(snap.Sets)})
	table.Render()
	return buf.String()
}
