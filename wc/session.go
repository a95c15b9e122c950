package wc

// Record is the result of counting one file.
type Record struct {
	Name string
	Results
}

// Session collects the records of one invocation in the order the files
// were given, along with their running total.
type Session struct {
	Records []Record
	Total   Results
}

func (s *Session) Add(name string, res Results) {
	s.Records = append(s.Records, Record{Name: name, Results: res})
	s.Total.Add(res)
}
