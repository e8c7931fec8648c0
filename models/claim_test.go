package models

import "testing"

func TestValidClaimTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{ClaimPending, ClaimAccepted}:  true,
		{ClaimPending, ClaimRejected}:  true,
		{ClaimAccepted, ClaimReturned}: true,
	}

	statuses := []string{ClaimPending, ClaimAccepted, ClaimRejected, ClaimReturned}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := ValidClaimTransition(from, to); got != want {
				t.Errorf("ValidClaimTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}
