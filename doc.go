// Package networth analyses a personal net worth history.
//
// A Ledger is decoded from a CSV export of dated amounts per institution. It
// is aggregated by date into Statistics: the net worth of each date, its
// difference with the previous date, and moving averages and growth over
// rolling windows. A RateSchedule of reference rates drives a one year goal
// projection, compared month by month with the achieved net worth.
//
// Missing values are not zero: quantities that cannot be computed, for lack of
// history or because of a zero denominator, are undefined Values.
//
// This package serves as the foundational logic for the `nw` command-line tool.
package networth
