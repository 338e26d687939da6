package service

import "time"

// SetClock pins the time ActivityService considers "now".
func (s *ActivityService) SetClock(now func() time.Time) {
	s.now = now
}

// SetClock pins the time used to build archive keys.
func (a *S3UploadArchive) SetClock(now func() time.Time) {
	a.now = now
}
