// Package scrape holds the league-independent parts of the standings pipeline.
//
// A league source fetches a page with Fetcher, finds the table rows with
// LocateRows, turns each row into a RowResult with its own RowParser and hands
// the rows to Assemble, which validates the teams, enforces the MinTeams floor,
// sorts by position and stamps the snapshot. Text cleanup shared by the row
// parsers lives in NormalizeName, ParseInt and SplitInts.
package scrape
