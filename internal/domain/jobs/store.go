package jobs

import (
	"strings"
	"sync"
)

// Store owns both the job and application collections so that submitting an
// application and bumping the parent job's counter is a single critical
// section with no observable partial state.
type Store struct {
	mu           sync.Mutex
	nextJobID    int
	nextAppID    int
	jobs         []Job
	applications []Application
}

func NewStore(seedJobs []Job, seedApplications []Application) *Store {
	s := &Store{
		nextJobID:    1,
		nextAppID:    1,
		jobs:         make([]Job, len(seedJobs)),
		applications: make([]Application, len(seedApplications)),
	}
	copy(s.jobs, seedJobs)
	copy(s.applications, seedApplications)
	for _, job := range seedJobs {
		if job.ID >= s.nextJobID {
			s.nextJobID = job.ID + 1
		}
	}
	for _, app := range seedApplications {
		if app.ID >= s.nextAppID {
			s.nextAppID = app.ID + 1
		}
	}
	return s
}

func (s *Store) List(f Filter) []Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		if f.Department != "" && !containsFold(job.Department, f.Department) {
			continue
		}
		if f.Location != "" && !containsFold(job.Location, f.Location) {
			continue
		}
		if f.Type != "" && job.Type != f.Type {
			continue
		}
		if f.Level != "" && job.Level != f.Level {
			continue
		}
		if f.Status != "" && job.Status != f.Status {
			continue
		}
		out = append(out, cloneJob(job))
	}
	return out
}

func (s *Store) Get(id int) (Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if job.ID == id {
			return cloneJob(job), nil
		}
	}
	return Job{}, ErrNotFound
}

func (s *Store) Create(job Job) Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = s.nextJobID
	s.nextJobID++
	s.jobs = append(s.jobs, job)
	return cloneJob(job)
}

func (s *Store) Update(id int, u Update) (Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID != id {
			continue
		}
		job := &s.jobs[i]
		if u.Title != nil {
			job.Title = *u.Title
		}
		if u.Department != nil {
			job.Department = *u.Department
		}
		if u.Location != nil {
			job.Location = *u.Location
		}
		if u.Type != nil {
			job.Type = *u.Type
		}
		if u.Level != nil {
			job.Level = *u.Level
		}
		if u.Salary != nil {
			salary := *u.Salary
			job.Salary = &salary
		}
		if u.Description != nil {
			job.Description = *u.Description
		}
		if u.Requirements != nil {
			job.Requirements = append([]string(nil), u.Requirements...)
		}
		if u.Benefits != nil {
			job.Benefits = append([]string(nil), u.Benefits...)
		}
		if u.ClosingDate != nil {
			job.ClosingDate = *u.ClosingDate
		}
		if u.Status != nil {
			job.Status = *u.Status
		}
		if u.HiringManager != nil {
			job.HiringManager = *u.HiringManager
		}
		return cloneJob(*job), nil
	}
	return Job{}, ErrNotFound
}

// ListApplications returns the applications for one job in insertion order.
// A missing job yields an empty list, not an error.
func (s *Store) ListApplications(jobID int) []Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Application, 0, 4)
	for _, app := range s.applications {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out
}

// SubmitApplication inserts the application and increments the parent job's
// applicant counter as one unit. The job must exist and be open.
func (s *Store) SubmitApplication(jobID int, app Application) (Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobIndex := -1
	for i := range s.jobs {
		if s.jobs[i].ID == jobID {
			jobIndex = i
			break
		}
	}
	if jobIndex == -1 {
		return Application{}, ErrNotFound
	}
	if s.jobs[jobIndex].Status != StatusOpen {
		return Application{}, ErrJobNotOpen
	}

	app.ID = s.nextAppID
	s.nextAppID++
	app.JobID = jobID
	s.applications = append(s.applications, app)
	s.jobs[jobIndex].ApplicantCount++
	return app, nil
}

func cloneJob(job Job) Job {
	if job.Salary != nil {
		salary := *job.Salary
		job.Salary = &salary
	}
	job.Requirements = append([]string(nil), job.Requirements...)
	job.Benefits = append([]string(nil), job.Benefits...)
	return job
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
