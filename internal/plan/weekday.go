package plan

// weekdayNames are the five teaching days a weekly grid maps onto.
var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// WeekOf returns the 1-based school week a 0-based day index falls in.
// Five teaching days make a week: indexes 0-4 are week 1, 5-9 week 2.
func WeekOf(dayIndex int) int {
	if dayIndex < 0 {
		return 1
	}
	return dayIndex/5 + 1
}

// WeekdayName returns the weekday slot (Monday-Friday) for a 0-based day
// index, cycling each five days.
func WeekdayName(dayIndex int) string {
	if dayIndex < 0 {
		dayIndex = 0
	}
	return weekdayNames[dayIndex%5]
}

// WeekChunks splits n day indexes into consecutive groups of at most five,
// one group per school week. Each chunk holds 0-based day indexes.
func WeekChunks(n int) [][]int {
	if n <= 0 {
		return nil
	}
	var chunks [][]int
	for start := 0; start < n; start += 5 {
		end := start + 5
		if end > n {
			end = n
		}
		chunk := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			chunk = append(chunk, i)
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
