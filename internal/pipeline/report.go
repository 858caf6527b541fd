package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"dlc-analytics/internal/model"
)

// PrintReport writes the human-readable analysis summary to stdout: overall
// totals, the top bank pincodes, state totals and the age distribution.
// It works off the finished document, so percentages use the final
// denominator. Ties rank in lexicographic pincode order.
func PrintReport(doc *model.SummaryDocument) {
	totalDLC := doc.TotalDLCCompleted
	totalPincodes := len(doc.BankPincodeData)

	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("📊 DLC COMPLETION ANALYSIS REPORT")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Println("📈 SUMMARY STATISTICS:")
	fmt.Printf("   Total Records Processed: %d\n", doc.TotalRecordsProcessed)
	fmt.Printf("   Total DLC Completed: %d\n", totalDLC)
	fmt.Printf("   Unique Bank Pincodes: %d\n", totalPincodes)
	if totalPincodes > 0 {
		fmt.Printf("   Average DLC per Bank: %d\n", totalDLC/totalPincodes)
	}

	if totalDLC == 0 {
		return
	}

	pincodes := make([]string, 0, totalPincodes)
	for pincode := range doc.BankPincodeData {
		pincodes = append(pincodes, pincode)
	}
	sort.Strings(pincodes)

	ranked := append([]string(nil), pincodes...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return doc.BankPincodeData[ranked[i]].TotalDLCCompleted > doc.BankPincodeData[ranked[j]].TotalDLCCompleted
	})
	if len(ranked) > 15 {
		ranked = ranked[:15]
	}

	fmt.Println("\n🏆 TOP 15 BANK PINCODES BY DLC COMPLETION:")
	for i, pincode := range ranked {
		stats := doc.BankPincodeData[pincode]
		pct := float64(stats.TotalDLCCompleted) / float64(totalDLC) * 100
		fmt.Printf("   %2d. Pincode %s (%s)\n", i+1, pincode, stats.State)
		fmt.Printf("       DLC Completed: %d (%.2f%%)\n", stats.TotalDLCCompleted, pct)
		if group, count := topAgeGroup(stats.AgeGroups); group != "" {
			fmt.Printf("       Top Age Group: %s (%d pensioners)\n", group, count)
		}
	}

	fmt.Println("\n🗺️ STATE-WISE DLC COMPLETION (by bank location):")
	type stateTotal struct {
		state    string
		total    int
		pincodes int
	}
	totals := make(map[string]*stateTotal)
	var order []string
	for _, pincode := range pincodes {
		stats := doc.BankPincodeData[pincode]
		st, ok := totals[stats.State]
		if !ok {
			st = &stateTotal{state: stats.State}
			totals[stats.State] = st
			order = append(order, stats.State)
		}
		st.total += stats.TotalDLCCompleted
		st.pincodes++
	}
	states := make([]*stateTotal, 0, len(order))
	for _, s := range order {
		states = append(states, totals[s])
	}
	sort.SliceStable(states, func(i, j int) bool { return states[i].total > states[j].total })
	if len(states) > 10 {
		states = states[:10]
	}
	for i, st := range states {
		pct := float64(st.total) / float64(totalDLC) * 100
		fmt.Printf("   %2d. %-20s: %8d DLC (%5.1f%%) | %3d pincodes\n",
			i+1, st.state, st.total, pct, st.pincodes)
	}

	fmt.Println("\n👥 OVERALL AGE GROUP DISTRIBUTION:")
	overall := make(map[string]int)
	for _, stats := range doc.BankPincodeData {
		for group, count := range stats.AgeGroups {
			overall[group] += count
		}
	}
	for _, group := range model.AgeGroups {
		if count := overall[group]; count > 0 {
			pct := float64(count) / float64(totalDLC) * 100
			fmt.Printf("   %-12s: %8d (%5.1f%%)\n", group, count, pct)
		}
	}
}

func topAgeGroup(groups map[string]int) (string, int) {
	best, bestCount := "", 0
	// Fixed iteration order keeps the report deterministic when counts tie.
	for _, group := range model.AgeGroups {
		if groups[group] > bestCount {
			best, bestCount = group, groups[group]
		}
	}
	return best, bestCount
}
