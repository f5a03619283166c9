package services

// GameRecorder receives game activity counters.
type GameRecorder interface {
	Registered()
	Clicked(points int64)
	Purchased(upgrade string)
}

type nopRecorder struct{}

func (nopRecorder) Registered()      {}
func (nopRecorder) Clicked(int64)    {}
func (nopRecorder) Purchased(string) {}

func recorderOrNop(r GameRecorder) GameRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
