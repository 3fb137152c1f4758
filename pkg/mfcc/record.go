package mfcc

// Record bundles the parametrization of one dataset file with its
// identifying metadata. Records are created once per input file and
// not mutated afterwards.
type Record struct {
	FileName string      `msgpack:"file_name" json:"file_name"`
	Class    string      `msgpack:"class" json:"class"`
	MFCC     [][]float64 `msgpack:"mfccs" json:"mfccs"`
	Delta1   [][]float64 `msgpack:"d1_mfccs" json:"d1_mfccs"`
	Delta2   [][]float64 `msgpack:"d2_mfccs" json:"d2_mfccs"`
}

// NewRecord builds a Record from a file's parametrization.
func NewRecord(fileName, class string, p *Params) Record {
	return Record{
		FileName: fileName,
		Class:    class,
		MFCC:     p.MFCC,
		Delta1:   p.Delta1,
		Delta2:   p.Delta2,
	}
}

// Params returns the record's matrices as a Params value.
func (r Record) Params() *Params {
	return &Params{MFCC: r.MFCC, Delta1: r.Delta1, Delta2: r.Delta2}
}

// Targets returns the class labels of records, in record order.
func Targets(records []Record) []string {
	targets := make([]string, len(records))
	for i, r := range records {
		targets[i] = r.Class
	}
	return targets
}

// Files returns the file identifiers of records, in record order.
func Files(records []Record) []string {
	files := make([]string, len(records))
	for i, r := range records {
		files[i] = r.FileName
	}
	return files
}
