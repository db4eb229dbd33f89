package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `liftlog keeps a personal strength-training log.

An entry is one session: a date, a plan day (list_plans) and exercises, each with sets of reps x weight.
Volume is reps x weight summed over sets.

Typical workflow:
1) Call exercise_suggestions and list_plans to pick names and the plan day.
2) Call save_entry. Reps and weight may be numbers or numeric strings; blanks count as 0.
3) Review with list_entries (newest date first) and weekly_stats (ISO weeks, newest first).
4) Fix mistakes with delete_entry; clear_entries wipes the log.

A result with "persisted": false means the change applies for this run but was not written to disk.

Docs:
- liftlog://docs/index
- liftlog://docs/entries
- liftlog://docs/stats
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "liftlog://docs/index",
		Name:        "index",
		Title:       "liftlog docs",
		Description: "What to read when",
		Content: `# liftlog docs

- liftlog://docs/entries: how sessions are entered, cleaned and stored
- liftlog://docs/stats: how weekly totals are computed
`,
	},
	{
		URI:         "liftlog://docs/entries",
		Name:        "entries",
		Title:       "Logging sessions",
		Description: "Entry shape and input cleaning rules",
		Content: `# Logging sessions

save_entry takes a date (YYYY-MM-DD, default today), a plan_key and a list of exercises.

- Exercise names are trimmed. Exercises with an empty name are dropped.
- If no named exercise remains the call fails with EMPTY_SESSION.
- reps and weight accept numbers or numeric strings. Anything unparseable, empty or negative becomes 0.
- Sets are kept even when they are all zero.
- Every entry, exercise and set gets a fresh ID.
- Unknown plan keys are kept and labelled with the key itself.

The newest save is placed first in the log. list_entries orders by date, newest first; entries on the same date keep log order.
`,
	},
	{
		URI:         "liftlog://docs/stats",
		Name:        "stats",
		Title:       "Weekly statistics",
		Description: "ISO week bucketing and totals",
		Content: `# Weekly statistics

Entries are grouped by ISO-8601 week, keyed "YYYY-Www". Weeks start on Monday and belong to the year of their Thursday, so 2024-12-30 is 2025-W01.

Per week:
- volume: sum of reps x weight
- sets: number of sets
- reps: sum of reps
- top_exercises: up to three exercise names by summed volume, ties broken by name

Entries with an unreadable date are counted under "unknown". weekly_stats returns the newest weeks first; limit defaults to the configured number of weeks.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
