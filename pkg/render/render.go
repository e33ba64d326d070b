// Package render formats week plans for the terminal.
package render

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/menuplan/menuplan/pkg/menu"
	"github.com/menuplan/menuplan/pkg/models"
)

// Output formats.
const (
	FormatList  = "list"
	FormatTable = "table"
)

// TodayMarker is appended to today's day heading in list output.
const TodayMarker = " ← сегодня"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dayStyle   = lipgloss.NewStyle().Bold(true)
	todayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle = lipgloss.NewStyle().Faint(true)
	upper      = cases.Upper(language.Russian)
)

// Header prints today's date and the active settings.
func Header(w io.Writer, todayIdx int, date string, s models.Settings) {
	fmt.Fprintf(w, "Сегодня: %s, дата: %s\n", menu.Days[todayIdx], date)
	fmt.Fprintf(w, "Профиль: %s, калории: %d, daily_mode: %s\n", s.Profile, s.Calories, s.DailyMode)
	if len(s.Exclude) > 0 {
		fmt.Fprintf(w, "Исключения: %s\n", strings.Join(s.Exclude, ", "))
	}
}

// Week prints the plan in the given format. Unknown formats fall back to list.
func Week(w io.Writer, format string, week models.WeekPlan, todayIdx int) {
	if format == FormatTable {
		Table(w, week, todayIdx)
		return
	}
	List(w, week, todayIdx)
}

// List prints one block per day with a line per meal.
func List(w io.Writer, week models.WeekPlan, todayIdx int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("=== План питания на неделю ==="))
	for idx, day := range week {
		fmt.Fprintln(w)
		if idx == todayIdx {
			fmt.Fprintln(w, todayStyle.Render(day.Day+TodayMarker))
		} else {
			fmt.Fprintln(w, dayStyle.Render(day.Day))
		}
		for _, slot := range menu.MealSlots {
			fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(menu.MealLabels[slot]+":"), day.Meals[slot])
		}
	}
}

// Table prints the week as a grid of days by meal slots with today highlighted.
func Table(w io.Writer, week models.WeekPlan, todayIdx int) {
	headers := []string{"ДЕНЬ"}
	for _, slot := range menu.MealSlots {
		headers = append(headers, upper.String(menu.MealLabels[slot]))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return titleStyle.Padding(0, 1)
			case row == todayIdx:
				return todayStyle.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		})

	for _, day := range week {
		cells := []string{upper.String(day.Day)}
		for _, slot := range menu.MealSlots {
			cells = append(cells, day.Meals[slot])
		}
		t.Row(cells...)
	}

	fmt.Fprintln(w, t.Render())
}

// Today prints the meals of a single day with an illustrative image link for each.
func Today(w io.Writer, day models.DayPlan) {
	fmt.Fprintln(w, titleStyle.Render("Сегодня: "+day.Day))
	for _, slot := range menu.MealSlots {
		dish := day.Meals[slot]
		fmt.Fprintf(w, "\n%s\n  %s\n  %s\n", labelStyle.Render(menu.MealLabels[slot]), dish, ImageURL(dish))
	}
}

// ImageURL returns a stock photo search link for dish. The link is only printed.
func ImageURL(dish string) string {
	query := strings.ReplaceAll(url.QueryEscape(dish+", healthy food, plate"), "+", "%20")
	return "https://source.unsplash.com/600x400/?" + query
}

// Profiles lists profile names with the size of each meal pool.
func Profiles(w io.Writer) {
	for _, name := range menu.Profiles {
		pools := menu.Pools[name]
		sizes := make([]string, 0, len(menu.MealSlots))
		for _, slot := range menu.MealSlots {
			sizes = append(sizes, fmt.Sprintf("%s %d", menu.MealLabels[slot], len(pools[slot])))
		}
		fmt.Fprintf(w, "%-12s %s\n", name, strings.Join(sizes, ", "))
	}
}
