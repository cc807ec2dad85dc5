// Package generation contains the monthly instance generation use cases.
package generation

import (
	"time"

	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// occurrencesInMonth computes the due days a template produces within the
// given month. It is pure: persistence and dedup against existing rows are
// the caller's concern.
//
// Rules per recurrence kind:
//   - one-time: the explicit date's day, only in the month containing it.
//   - monthly: the anchor day clamped to the month's length, for every
//     month from the start month onward.
//   - yearly: the clamped anchor day, only in the matching anchor month.
//   - weekly: every occurrence of the anchor weekday, first occurrence on
//     or after the later of the month start and the template start date.
//
// A template whose EndedAt falls before or inside the month produces no
// occurrence after that date.
func occurrencesInMonth(tpl *entity.Template, month valueobject.MonthKey) ([]int, error) {
	startMonth := valueobject.MonthKeyOf(tpl.StartDate)
	if month.Before(startMonth) {
		return nil, nil
	}
	if tpl.EndedAt != nil && month.After(valueobject.MonthKeyOf(*tpl.EndedAt)) {
		return nil, nil
	}

	var days []int

	switch tpl.Recurrence {
	case entity.RecurrenceOneTime:
		if tpl.OneTimeDate == nil {
			return nil, domainerror.NewTemplateError(
				domainerror.ErrCodeMissingAnchor,
				"one-time template has no date",
				domainerror.ErrMissingAnchor,
			)
		}
		if month.Contains(*tpl.OneTimeDate) {
			days = append(days, tpl.OneTimeDate.Day())
		}

	case entity.RecurrenceMonthly:
		if tpl.AnchorDay < 1 || tpl.AnchorDay > 31 {
			return nil, domainerror.NewTemplateError(
				domainerror.ErrCodeMissingAnchor,
				"monthly template has no anchor day",
				domainerror.ErrMissingAnchor,
			)
		}
		days = append(days, month.ClampDay(tpl.AnchorDay))

	case entity.RecurrenceYearly:
		if tpl.AnchorDay < 1 || tpl.AnchorDay > 31 || tpl.AnchorMonth < time.January || tpl.AnchorMonth > time.December {
			return nil, domainerror.NewTemplateError(
				domainerror.ErrCodeMissingAnchor,
				"yearly template has no anchor day or month",
				domainerror.ErrMissingAnchor,
			)
		}
		if month.Month() == tpl.AnchorMonth {
			days = append(days, month.ClampDay(tpl.AnchorDay))
		}

	case entity.RecurrenceWeekly:
		days = weeklyOccurrences(tpl, month)

	default:
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeInvalidRecurrence,
			"unknown recurrence "+string(tpl.Recurrence),
			domainerror.ErrInvalidRecurrence,
		)
	}

	if tpl.EndedAt != nil && month.Contains(*tpl.EndedAt) {
		days = truncateAfter(days, tpl.EndedAt.Day())
	}

	return days, nil
}

// weeklyOccurrences returns every day of the month falling on the
// template's anchor weekday, starting from the later of the month start
// and the template's start date. A week spanning the previous month
// boundary contributes nothing before day 1.
func weeklyOccurrences(tpl *entity.Template, month valueobject.MonthKey) []int {
	first := month.FirstDay()
	if tpl.StartDate.After(first) {
		first = time.Date(
			tpl.StartDate.Year(), tpl.StartDate.Month(), tpl.StartDate.Day(),
			0, 0, 0, 0, time.UTC,
		)
	}

	// Advance to the first anchor weekday on or after the window start.
	offset := (int(tpl.AnchorWeekday) - int(first.Weekday()) + 7) % 7
	current := first.AddDate(0, 0, offset)

	var days []int
	for month.Contains(current) {
		days = append(days, current.Day())
		current = current.AddDate(0, 0, 7)
	}
	return days
}

// truncateAfter drops due days strictly after the given day.
func truncateAfter(days []int, lastDay int) []int {
	kept := days[:0]
	for _, d := range days {
		if d <= lastDay {
			kept = append(kept, d)
		}
	}
	return kept
}
