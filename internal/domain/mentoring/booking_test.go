package mentoring

import "testing"

func TestBookingStatusNext(t *testing.T) {
	s := BookingFirstOffer
	var seen []BookingStatus
	for {
		next, ok := s.Next()
		if !ok {
			break
		}
		seen = append(seen, next)
		s = next
	}
	if len(seen) != 3 || s != BookingCompleted {
		t.Fatalf("unexpected progression: %v", seen)
	}
	if BookingStatus("cancelled").Valid() {
		t.Fatalf("unknown status should be invalid")
	}
	if _, ok := BookingStatus("cancelled").Next(); ok {
		t.Fatalf("unknown status has no successor")
	}
}
