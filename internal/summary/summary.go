package summary

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"matka-admin/internal/model"
	"matka-admin/pkg/dates"
)

// Formatter reshapes raw dashboard summary objects into ordered
// label/value display items. Currency values render with a fixed
// two-decimal precision, counts with locale-appropriate thousands
// separators. It holds no state beyond formatting configuration.
type Formatter struct {
	printer        *message.Printer
	currencySymbol string
}

// NewFormatter builds a formatter for the given BCP 47 locale tag and
// currency symbol. An unparsable locale falls back to English.
func NewFormatter(locale, currencySymbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		printer:        message.NewPrinter(tag),
		currencySymbol: currencySymbol,
	}
}

// Currency formats a monetary amount with the configured symbol and
// exactly two decimal places.
func (f *Formatter) Currency(v float64) string {
	return f.currencySymbol + decimal.NewFromFloat(v).StringFixed(2)
}

// Count formats an integer with the locale's digit grouping.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

// DashboardItems reshapes a dashboard summary into the ordered display
// items the overview tiles and summary exports consume. The final item
// stamps the generation date in display format.
func (f *Formatter) DashboardItems(s model.DashboardSummary, now time.Time) []model.StatItem {
	return []model.StatItem{
		{Label: "Total Users", Value: f.Count(s.TotalUsers)},
		{Label: "Active Users", Value: f.Count(s.ActiveUsers)},
		{Label: "Total Bids", Value: f.Count(s.TotalBids)},
		{Label: "Total Deposits", Value: f.Currency(s.TotalDeposits)},
		{Label: "Total Withdrawals", Value: f.Currency(s.TotalWithdrawals)},
		{Label: "Total Winnings", Value: f.Currency(s.TotalWinnings)},
		{Label: "Pending Withdrawals", Value: f.Count(s.PendingWithdrawals)},
		{Label: "Generated On", Value: dates.FormatDisplay(now)},
	}
}

// RegistrationItems reshapes registration stats into display items.
func (f *Formatter) RegistrationItems(stats model.RegistrationStats) []model.StatItem {
	return []model.StatItem{
		{Label: "Registered Today", Value: f.Count(stats.Today)},
		{Label: "Registered Yesterday", Value: f.Count(stats.Yesterday)},
		{Label: "Registered Last 7 Days", Value: f.Count(stats.TrailingWeek)},
	}
}

// SegmentItems reshapes cohort counts into display items. The cohorts
// overlap, so the values do not sum to the first item.
func (f *Formatter) SegmentItems(counts model.SegmentCounts) []model.StatItem {
	return []model.StatItem{
		{Label: "All Users", Value: f.Count(counts.All)},
		{Label: "Play Active", Value: f.Count(counts.PlayActive)},
		{Label: "Play Inactive", Value: f.Count(counts.PlayInactive)},
		{Label: "Device Blocked", Value: f.Count(counts.BlockDevices)},
	}
}
