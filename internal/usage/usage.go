// Package usage renders plugin descriptors as plain-text usage, markdown
// documentation and compact cheat sheets.
package usage

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gaspardpetit/plugargs/sdk/api/spi"
	"github.com/gaspardpetit/plugargs/sdk/base/i18n"
)

const (
	// SummaryKey is the catalog key of a plugin's one-line summary.
	SummaryKey = "usage"
	// DescriptionSuffix is appended to an option name to form the catalog
	// key of its description.
	DescriptionSuffix = ".desc"

	wrapWidth = 72
)

// Summary returns the localized one-line summary of the plugin.
func Summary(msgs *i18n.Bundle) string {
	return msgs.Get(SummaryKey)
}

// Description returns the localized description of an option.
func Description(a spi.ArgSpec, msgs *i18n.Bundle) string {
	return msgs.Get(a.Name + DescriptionSuffix)
}

// Placeholder is the value shown for an option in cheat sheets: the rendered
// current value, else the choice hint, else a generic text placeholder.
// Secret values are never shown.
func Placeholder(a spi.ArgSpec, msgs *i18n.Bundle) string {
	if a.Value != "" && !a.Secret {
		return a.Value
	}
	if a.Choice != "" {
		return a.Choice
	}
	if a.Type == spi.ArgFlag {
		return "{y|n}"
	}
	return msgs.Get("usage.placeholder.text")
}

// TypeName returns the localized name of the option's value kind.
func TypeName(a spi.ArgSpec, msgs *i18n.Bundle) string {
	return msgs.Get("usage.type." + string(a.Type))
}

func valuePattern(a spi.ArgSpec, msgs *i18n.Bundle) string {
	if a.Type == spi.ArgFlag {
		return "{y|n}"
	}
	return msgs.Get("usage.placeholder.text")
}

// PlainText renders the usage block printed by the compiler's help: an
// invocation line with the summary, then one block per option.
func PlainText(d spi.PluginDescriptor, msgs *i18n.Bundle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-24s:  %s\n", d.OptionName, Summary(msgs))
	for _, a := range d.Args {
		fmt.Fprintf(&sb, "      %s=%s", a.Token, valuePattern(a, msgs))
		if a.Value != "" {
			fmt.Fprintf(&sb, "  (%s: %s)", msgs.Get("usage.default"), a.Value)
		}
		sb.WriteByte('\n')
		if a.Choice != "" {
			fmt.Fprintf(&sb, "          %s: %s\n", msgs.Get("usage.choice"), a.Choice)
		}
		desc := Description(a, msgs)
		if desc == "" {
			continue
		}
		for _, line := range strings.Split(text.WrapSoft(desc, wrapWidth), "\n") {
			fmt.Fprintf(&sb, "          %s\n", line)
		}
	}
	return sb.String()
}

// Markdown renders the documentation section of one plugin.
func Markdown(d spi.PluginDescriptor, msgs *i18n.Bundle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<a name=\"%s\"></a>\n", d.Namespace)
	fmt.Fprintf(&sb, "### %s\n\n", msgs.Format("usage.title", d.Namespace))
	if s := Summary(msgs); s != "" {
		sb.WriteString(s + "\n\n")
	}
	fmt.Fprintf(&sb, "#### %s\n\n", msgs.Get("usage.invocation"))
	sb.WriteString("```\n" + d.OptionName)
	for _, a := range d.Args {
		fmt.Fprintf(&sb, " [%s=%s]", a.Token, valuePattern(a, msgs))
	}
	sb.WriteString("\n```\n\n")

	fmt.Fprintf(&sb, "#### %s\n\n", msgs.Get("usage.options"))
	if len(d.Args) == 0 {
		sb.WriteString(msgs.Get("usage.noOptions") + "\n")
		return sb.String()
	}
	sb.WriteString(OptionsTable(d, msgs) + "\n\n")
	for _, a := range d.Args {
		fmt.Fprintf(&sb, "##### %s\n", a.Token)
		desc := Description(a, msgs)
		if desc == "" {
			desc = msgs.Get("usage.noDescription")
		}
		sb.WriteString(desc + "\n\n")
	}
	return sb.String()
}

// OptionsTable renders the options of d as a markdown table.
func OptionsTable(d spi.PluginDescriptor, msgs *i18n.Bundle) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{
		msgs.Get("usage.option"),
		msgs.Get("usage.type"),
		msgs.Get("usage.default"),
		msgs.Get("usage.choice"),
	})
	for _, a := range d.Args {
		tw.AppendRow(table.Row{a.Name, TypeName(a, msgs), a.Value, a.Choice})
	}
	return tw.RenderMarkdown()
}

// CheatSheet renders one line for the plugin switch and one per option,
// each indented by indent spaces and wrapped in prefix and suffix. The prefix
// supplies the leading "-", as in "<arg>-".
func CheatSheet(d spi.PluginDescriptor, msgs *i18n.Bundle, indent int, prefix, suffix string) string {
	pad := strings.Repeat(" ", indent)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s%s%s\n", pad, prefix, d.Namespace, suffix)
	for _, a := range d.Args {
		fmt.Fprintf(&sb, "%s%s%s.%s=%s%s\n", pad, prefix, d.Namespace, a.Name, Placeholder(a, msgs), suffix)
	}
	return sb.String()
}
