package engine

// ComputeProgress derives the completion snapshot of a session from its
// policy and battle counts. completedBattles is the number of recorded
// battles; perItemCounts (movie id -> participations) is only consulted
// by the per-movie policy and may be nil otherwise.
//
// The completed flag flips exactly at the target boundary. Flipping the
// session status to completed is the caller's side effect, not ours.
func ComputeProgress(policy Policy, completedBattles int, perItemCounts map[string]int, totalItems int) (Progress, error) {
	if err := policy.Validate(); err != nil {
		return Progress{}, err
	}

	prog := Progress{
		TotalMovies:      totalItems,
		CompletedBattles: completedBattles,
	}

	var target int
	switch policy.LimitType {
	case LimitComplete:
		target = totalItems * (totalItems - 1) / 2
	case LimitFixed:
		target = policy.BattleLimit
	case LimitPerMovie:
		target = totalItems * policy.BattleLimit
		// Each battle advances two items, so progress is measured in
		// participations rather than battles.
		prog.CompletedBattles = sumCounts(perItemCounts, completedBattles)
	case LimitInfinite:
		// No target: the session battles for as long as the user wants.
		return prog, nil
	}

	prog.TargetBattles = &target
	if policy.LimitType == LimitPerMovie {
		// The participation sum only feeds the percent display. Done
		// means every single item reached the limit: a lopsided run
		// where one movie never battled is not complete, however large
		// the total. Same rule the pairing generator stops on.
		prog.IsCompleted = everyCountAtLimit(perItemCounts, policy.BattleLimit, totalItems)
	} else {
		prog.IsCompleted = target > 0 && prog.CompletedBattles >= target
	}

	percent := 0.0
	if target > 0 {
		percent = float64(prog.CompletedBattles) / float64(target) * 100
		if percent > 100 {
			percent = 100
		}
	}
	prog.CompletionPercent = &percent

	return prog, nil
}

// sumCounts totals per-item participations, falling back to two per
// battle when the caller did not supply counts.
func sumCounts(perItemCounts map[string]int, completedBattles int) int {
	if perItemCounts == nil {
		return completedBattles * 2
	}
	total := 0
	for _, c := range perItemCounts {
		total += c
	}
	return total
}

// everyCountAtLimit reports whether all of the session's items have
// battled at least limit times. Missing counts read as zero, so a nil
// or partial map can never declare a session done.
func everyCountAtLimit(perItemCounts map[string]int, limit, totalItems int) bool {
	if totalItems == 0 || len(perItemCounts) < totalItems {
		return false
	}
	for _, c := range perItemCounts {
		if c < limit {
			return false
		}
	}
	return true
}
