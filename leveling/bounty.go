package leveling

// bountyCheckpoint anchors a known (level, value) point of the bounty table.
type bountyCheckpoint struct {
	Level int
	Value int64
}

// bountyCheckpoints is the canonical bounty table, ordered and monotonically
// non-decreasing in both columns. Values between checkpoints are linearly
// interpolated; levels past the last checkpoint pay the cap.
var bountyCheckpoints = []bountyCheckpoint{
	{0, 0},
	{1, 1_000_000},
	{5, 10_000_000},
	{10, 30_000_000},
	{15, 81_000_000},
	{20, 150_000_000},
	{25, 320_000_000},
	{30, 500_000_000},
	{35, 860_000_000},
	{40, 1_057_000_000},
	{45, 1_500_000_000},
	{50, 3_000_000_000},
}

// BountyForLevel maps a level to its monetary bounty. Exact at checkpoints,
// floored linear interpolation between them.
func BountyForLevel(level int) int64 {
	if level <= 0 {
		return bountyCheckpoints[0].Value
	}
	last := bountyCheckpoints[len(bountyCheckpoints)-1]
	if level >= last.Level {
		return last.Value
	}
	for i := 1; i < len(bountyCheckpoints); i++ {
		next := bountyCheckpoints[i]
		if level > next.Level {
			continue
		}
		if level == next.Level {
			return next.Value
		}
		prev := bountyCheckpoints[i-1]
		span := int64(next.Level - prev.Level)
		offset := int64(level - prev.Level)
		return prev.Value + offset*(next.Value-prev.Value)/span
	}
	return last.Value
}
