package merge

import "libretto/internal/model"

// ScaffoldOverlay builds a blank timing overlay from a base libretto:
// one track per musical number, every segment listed at start 0. The
// result is a template for estimation or hand-timing, not usable
// timing data as-is.
func ScaffoldOverlay(base *model.BaseLibretto, basePath string) model.TimingOverlay {
	overlay := model.TimingOverlay{
		Version:      model.DocumentVersion,
		BaseLibretto: basePath,
	}
	for _, number := range base.Numbers {
		track := model.TrackTiming{
			TrackTitle: number.Label,
			NumberIDs:  []string{number.ID},
		}
		for _, seg := range number.Segments {
			track.SegmentTimes = append(track.SegmentTimes, model.SegmentTime{
				SegmentID: seg.ID,
			})
		}
		overlay.TrackTimings = append(overlay.TrackTimings, track)
	}
	return overlay
}
