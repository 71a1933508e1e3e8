package mathutil

const (
	// Both ends of every Pascal row stay at one
	pascalEdge = 1

	// halfDivisor is used for walking symmetric rows from both ends
	halfDivisor = 2
)
