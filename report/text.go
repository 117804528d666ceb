package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/votesim/builder"
	"github.com/katalvlaran/votesim/irv"
	"github.com/katalvlaran/votesim/ranking"
	"github.com/katalvlaran/votesim/simulation"
	"github.com/katalvlaran/votesim/socialgraph"
	"github.com/katalvlaran/votesim/welfare"
)

// Connections writes g as a 0/1 matrix, one labelled row per voter.
func Connections(w io.Writer, g *socialgraph.Graph, names []string) error {
	var b strings.Builder
	writeConnections(&b, g, names)
	_, err := io.WriteString(w, b.String())
	return err
}

// Rankings writes every ballot in s as [candidate, score, rank] triples in
// candidate-id order, then the declared order.
func Rankings(w io.Writer, s *ranking.Store, names []string) error {
	var b strings.Builder
	writeRankings(&b, s, names)
	_, err := io.WriteString(w, b.String())
	return err
}

// IRV writes an Instant-Runoff outcome round by round.
func IRV(w io.Writer, o *simulation.IRVOutcome) error {
	var b strings.Builder
	writeIRV(&b, o)
	_, err := io.WriteString(w, b.String())
	return err
}

// Strategic writes a strategic voting outcome.
func Strategic(w io.Writer, o *simulation.StrategicOutcome) error {
	var b strings.Builder
	writeStrategic(&b, o)
	_, err := io.WriteString(w, b.String())
	return err
}

// Summary writes the full text report for out: header, electorate,
// plurality baseline and whichever resolvers ran.
func Summary(w io.Writer, out *simulation.Outcome) error {
	var b strings.Builder

	cfg := out.Config
	fmt.Fprintf(&b, "votesim run %s\n", out.RunID)
	fmt.Fprintf(&b, "voters %d, candidates %d, seed %d\n", out.Initial.Voters(), out.Initial.Candidates(), cfg.Seed)
	fmt.Fprintf(&b, "graph %s (%d edges), scores %s\n", cfg.Graph.Model, out.Edges, cfg.Scores.Distribution)
	b.WriteString("\n")

	writeConnections(&b, out.Graph, out.Names)
	b.WriteString("\n")
	writeRankings(&b, out.Initial, out.Names)
	b.WriteString("\n")

	b.WriteString("PLURALITY\n")
	fmt.Fprintf(&b, "tally: %s\n", formatTally(out.Plurality.Tally))
	fmt.Fprintf(&b, "winner: %d\n", out.Plurality.Winner)
	writeWelfare(&b, "welfare", out.Plurality.Welfare)

	if out.IRV != nil {
		b.WriteString("\n")
		writeIRV(&b, out.IRV)
	}
	if out.Strategic != nil {
		b.WriteString("\n")
		writeStrategic(&b, out.Strategic)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeConnections(b *strings.Builder, g *socialgraph.Graph, names []string) {
	b.WriteString("CONNECTIONS\n")
	for i, row := range g.Matrix() {
		fmt.Fprintf(b, "%10s", label(names, i))
		for _, cell := range row {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(cell))
		}
		b.WriteByte('\n')
	}
}

func writeRankings(b *strings.Builder, s *ranking.Store, names []string) {
	b.WriteString("CANDIDATE Rankings\n")
	for v := 0; v < s.Voters(); v++ {
		fmt.Fprintf(b, "%-6s ", label(names, v))
		for c := 1; c <= s.Candidates(); c++ {
			if e, ok := s.Find(v, c); ok {
				fmt.Fprintf(b, "[%d, %.1f, %d]", e.Candidate, e.Score, e.Rank)
			}
		}
		fmt.Fprintf(b, " ORDER %s\n", formatList(s.Ballot(v).Candidates(), ", "))
	}
}

func writeIRV(b *strings.Builder, o *simulation.IRVOutcome) {
	b.WriteString("INSTANT RUNOFF\n")
	for _, r := range o.Rounds {
		fmt.Fprintf(b, "round %d: %s", r.Number, formatCounts(r.Tally))
		if len(r.LastPlace) > 0 {
			fmt.Fprintf(b, " | last place %s", formatCounts(r.LastPlace))
		}
		fmt.Fprintf(b, " | eliminate %d (%s)\n", r.Eliminated, r.Rule)
	}
	fmt.Fprintf(b, "winner: %d\n", o.Winner)
	fmt.Fprintf(b, "elimination order: %s\n", formatList(o.EliminationOrder, " "))
	writeWelfare(b, "welfare", o.Welfare)
	writeWelfare(b, "welfare from initial", o.FromInitial)
}

func writeStrategic(b *strings.Builder, o *simulation.StrategicOutcome) {
	fmt.Fprintf(b, "STRATEGIC VOTING (%s)\n", o.Semantics)
	fmt.Fprintf(b, "changes per round: %s\n", formatList(o.Changes, " "))
	total := 0
	for _, c := range o.Changes {
		total += c
	}
	if o.Converged {
		fmt.Fprintf(b, "converged after %d rounds, %d changes\n", o.Rounds, total)
	} else {
		fmt.Fprintf(b, "not converged after %d rounds, %d changes\n", o.Rounds, total)
	}
	fmt.Fprintf(b, "first choices: %s\n", formatList(o.FirstChoices, " "))
	fmt.Fprintf(b, "winner: %d\n", o.Winner)
	writeWelfare(b, "welfare", o.Welfare)
	writeWelfare(b, "welfare from initial", o.FromInitial)
}

func writeWelfare(b *strings.Builder, name string, w welfare.Welfare) {
	fmt.Fprintf(b, "%s: cardinal %.2f, ordinal %d\n", name, w.Cardinal, w.Ordinal)
}

// label names voter i, falling back to the legacy naming scheme.
func label(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return builder.NameIDFn(i)
}

func formatList(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, sep) + "]"
}

func formatCounts(counts []irv.Count) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%d:%d", c.Candidate, c.Votes)
	}
	return strings.Join(parts, " ")
}

// formatTally renders a welfare.Tally slice, skipping the unused index 0.
func formatTally(tally []int) string {
	parts := make([]string, 0, len(tally))
	for c := 1; c < len(tally); c++ {
		parts = append(parts, fmt.Sprintf("%d:%d", c, tally[c]))
	}
	return strings.Join(parts, " ")
}
