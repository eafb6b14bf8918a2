package searcher

// Scoring constants for terminal states

const WinScore = 100000000 // Score of a won state reached without consuming any ply
const DepthPenalty = 100   // Deducted from a win (added to a loss) per consumed ply

// Infinity bounds every score the evaluator can produce. It leaves headroom
// so a search window can be narrowed by one without overflowing.
const Infinity = int(^uint(0)>>1) >> 2
