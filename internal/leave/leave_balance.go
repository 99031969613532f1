package leave

import "github.com/kidaholy/human-resource-sub000/internal/config"

type Bucket string

const (
	BucketAnnual Bucket = "annual"
	BucketSick   Bucket = "sick"
	BucketOther  Bucket = "other"
)

// Allotments is the days granted per bucket. There is no year scoping:
// every approved request ever recorded counts against it.
type Allotments map[Bucket]int

func DefaultAllotments() Allotments {
	return Allotments{
		BucketAnnual: 30,
		BucketSick:   15,
		BucketOther:  5,
	}
}

func AllotmentsFromConfig(cfg config.LeaveConfig) Allotments {
	return Allotments{
		BucketAnnual: cfg.AnnualAllotment,
		BucketSick:   cfg.SickAllotment,
		BucketOther:  cfg.OtherAllotment,
	}
}

type BucketBalance struct {
	Allotment int
	Used      int
	// Remaining is not floored and goes negative when over-approved.
	Remaining int
}

type Balance struct {
	Annual BucketBalance
	Sick   BucketBalance
	Other  BucketBalance
}

// ComputeBalance replays the approved history against the allotments.
// Records that are not fully approved are ignored.
func ComputeBalance(history []LeaveRequest, allotments Allotments) Balance {
	used := map[Bucket]int{}
	for _, l := range history {
		if l.State != StateApproved {
			continue
		}
		used[l.LeaveType.Bucket()] += l.TotalDays()
	}

	bucket := func(b Bucket) BucketBalance {
		return BucketBalance{
			Allotment: allotments[b],
			Used:      used[b],
			Remaining: allotments[b] - used[b],
		}
	}
	return Balance{
		Annual: bucket(BucketAnnual),
		Sick:   bucket(BucketSick),
		Other:  bucket(BucketOther),
	}
}
