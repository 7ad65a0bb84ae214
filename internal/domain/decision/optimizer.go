package decision

type Offer struct {
	Amount int
	Period int
}

// FindOffer searches for the best amount and period the modifier can support.
// The first matching rule wins:
//   - the requested amount fits at the requested period: offer the full capacity for that period;
//   - the capacity is still at least the minimum amount: offer the reduced capacity;
//   - otherwise extend the period until the requested amount fits, if that stays within the period limits.
//
// modifier must be positive.
func FindOffer(modifier, requestedAmount, requestedPeriod int) (Offer, bool) {
	maxForPeriod := highestValidLoanAmount(modifier, requestedPeriod)

	if requestedAmount <= maxForPeriod {
		return Offer{Amount: maxForPeriod, Period: requestedPeriod}, true
	}

	if maxForPeriod >= MinimumLoanAmount {
		return Offer{Amount: maxForPeriod, Period: requestedPeriod}, true
	}

	// The extension is computed for the requested amount, not a reduced one.
	needed := neededPeriod(modifier, requestedAmount)
	if needed >= MinimumLoanPeriod && needed <= MaximumLoanPeriod {
		return Offer{Amount: requestedAmount, Period: needed}, true
	}

	return Offer{}, false
}

func highestValidLoanAmount(modifier, period int) int {
	return min(modifier*period, MaximumLoanAmount)
}

// neededPeriod is ceil(amount / modifier).
func neededPeriod(modifier, amount int) int {
	return (amount + modifier - 1) / modifier
}
