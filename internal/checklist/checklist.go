// Package checklist maps appointment types to pre-visit instruction lists and
// formats them for outbound messages.
package checklist

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultType is used when an appointment carries an unknown type.
const DefaultType = "General Checkup"

var templates = map[string][]string{
	"General Checkup": {
		"Bring your insurance card",
		"Arrive 15 minutes early for check-in",
		"Bring a list of current medications",
		"No eating 30 minutes before appointment",
	},
	"Dental Cleaning": {
		"Brush your teeth before coming in",
		"Bring your insurance card",
		"No eating 2 hours before appointment",
		"Arrive 15 minutes early",
		"Bring list of any medications you're taking",
	},
	"Root Canal": {
		"Take ibuprofen 1 hour before appointment",
		"Eat a light meal beforehand (you may be numb after)",
		"Arrange transportation home",
		"Bring insurance card and photo ID",
		"Plan to take the rest of the day off",
	},
	"Surgery/Extraction": {
		"DO NOT eat or drink 8 hours before appointment",
		"Arrange someone to drive you home",
		"Wear comfortable, loose clothing",
		"Remove all jewelry and contact lenses",
		"Bring insurance card and photo ID",
		"Take prescribed pre-medication as directed",
	},
	"Physical Exam": {
		"Bring insurance card and photo ID",
		"Bring list of current medications",
		"Wear comfortable, easy-to-remove clothing",
		"Arrive 15 minutes early for paperwork",
		"Bring any previous test results or records",
	},
	"Blood Work/Lab": {
		"Fast for 12 hours if fasting labs ordered",
		"Drink plenty of water (unless fasting)",
		"Wear short sleeves or sleeves that roll up easily",
		"Bring insurance card and photo ID",
		"Bring lab order form from doctor",
	},
	"Specialist Consultation": {
		"Bring referral from your primary doctor",
		"Bring insurance card and photo ID",
		"Bring all relevant medical records",
		"Arrive 20 minutes early for new patient paperwork",
		"Prepare list of questions for the doctor",
	},
	"Follow-up Visit": {
		"Bring insurance card",
		"Note any changes in symptoms since last visit",
		"Bring current medications",
		"Arrive 10 minutes early",
	},
	"Orthodontic Adjustment": {
		"Brush and floss thoroughly before appointment",
		"Bring your retainer case",
		"Avoid hard/sticky foods beforehand",
		"Bring insurance card",
	},
	"Eye Exam": {
		"Bring current glasses and contact lenses",
		"Bring insurance card and photo ID",
		"Don't wear eye makeup",
		"Arrange transportation (pupils may be dilated)",
		"Bring sunglasses for after exam",
	},
}

// ForType returns the checklist items for an appointment type. Unknown types
// fall back to the General Checkup list.
func ForType(appointmentType string) []string {
	if items, ok := templates[appointmentType]; ok {
		return items
	}
	return templates[DefaultType]
}

// Types returns all known appointment types in stable order.
func Types() []string {
	types := make([]string, 0, len(templates))
	for t := range templates {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// splitItems turns a newline-delimited checklist string into trimmed,
// non-empty items.
func splitItems(checklist string) []string {
	var items []string
	for _, line := range strings.Split(checklist, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// FormatForSMS renders a newline-delimited checklist as a numbered block with
// the given header, prefixed by a blank line so it can be appended to a
// message body. Empty checklists render as an empty string.
func FormatForSMS(checklist, header string) string {
	items := splitItems(checklist)
	if len(items) == 0 {
		return ""
	}
	if header == "" {
		header = "Checklist:"
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(header)
	for i, item := range items {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, item))
	}
	return b.String()
}

// FormatForEmail renders a newline-delimited checklist as an HTML list block.
// Empty checklists render as an empty string.
func FormatForEmail(checklist string) string {
	items := splitItems(checklist)
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div style="margin-top: 20px; padding: 15px; background: #f7fafc; border-radius: 6px;">`)
	b.WriteString(`<h3 style="color: #2d3748; margin-top: 0;">📋 Pre-Visit Checklist</h3>`)
	b.WriteString(`<ul style="color: #4a5568; margin: 10px 0;">`)
	for _, item := range items {
		b.WriteString(`<li style="margin-bottom: 5px;">` + item + `</li>`)
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}
