package core

// Summary is the aggregated view over the whole transaction log: income per
// member, the joint expense total, and each member's fund balance.
//
// Balance policy: joint expenses are split evenly between the two members.
// When the total is odd, jacob carries the extra unit. The split is a
// reporting convention only; nothing is written back to the store.
type Summary struct {
	Income       map[Person]int64
	JointExpense int64
	Balance      map[Person]int64
	Records      int
}

// Members is the fixed set of people a fund balance is computed for.
var Members = []Person{PersonJacob, PersonNaomi}

// Summarize folds the full transaction log into a Summary. An empty log
// yields all-zero totals. Aggregation is a single pass over the records.
func Summarize(txs []Transaction) Summary {
	s := Summary{
		Income:  map[Person]int64{PersonJacob: 0, PersonNaomi: 0},
		Balance: map[Person]int64{PersonJacob: 0, PersonNaomi: 0},
		Records: len(txs),
	}
	for _, tx := range txs {
		switch tx.Type {
		case TypeIncome:
			s.Income[tx.Person] += tx.Amount.Units
		case TypeExpense:
			if tx.Person == PersonJoint {
				s.JointExpense += tx.Amount.Units
			}
		}
	}
	jacobShare := (s.JointExpense + 1) / 2
	naomiShare := s.JointExpense / 2
	s.Balance[PersonJacob] = s.Income[PersonJacob] - jacobShare
	s.Balance[PersonNaomi] = s.Income[PersonNaomi] - naomiShare
	return s
}

// TotalIncome returns the combined income of both members.
func (s Summary) TotalIncome() int64 {
	var total int64
	for _, p := range Members {
		total += s.Income[p]
	}
	return total
}
