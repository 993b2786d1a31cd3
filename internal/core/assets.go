package core

// Assets is the snapshot of the five cash buckets. It is replaced wholesale
// on every update; there are no partial bucket edits at this layer.
type Assets struct {
	BankA     int64 `json:"bankA"`
	BankB     int64 `json:"bankB"`
	Cash      int64 `json:"cash"`
	Reksadana int64 `json:"reksadana"`
	EWallet   int64 `json:"eWallet"`
}

// Total sums the five buckets. Recomputed on demand, never cached.
func (a Assets) Total() int64 {
	return a.BankA + a.BankB + a.Cash + a.Reksadana + a.EWallet
}
