package main

import (
	"bytes"
	"fmt"

	"github.com/henderiw/rangecut/pkg/rangecut"
)

var values = []struct {
	record string
	sep    byte
}{
	{record: "vlan=100;", sep: '='},
	{record: "vxlan=10000;", sep: '='},
	{record: "as:65000;", sep: ':'},
}

func main() {
	var buf []byte
	var records []rangecut.Range[int]
	for _, v := range values {
		start := len(buf)
		buf = append(buf, v.record...)
		records = append(records, rangecut.RangeFrom(start, len(buf)))
	}
	fmt.Println("buffer", string(buf))

	all := records[0]
	for _, r := range records[1:] {
		all = all.Concat(r)
	}
	fmt.Println("all", all)

	rest := all
	for i, r := range records {
		// strip the trailing ';'
		body := r.RemoveSuffix(rangecut.RangeFrom(r.End-1, r.End))

		// find the separator relative to the body and make it absolute
		idx := bytes.IndexByte(rangecut.Index(buf, body), values[i].sep)
		sep := rangecut.Compose(body, rangecut.RangeFrom(idx, idx+1))

		key, value := body.Cut(sep)
		fmt.Println("record", r, "key", string(rangecut.Index(buf, key)), "value", string(rangecut.Index(buf, value)))

		rest = rest.RemovePrefix(r)
		fmt.Println("remaining", rest, string(rangecut.Index(buf, rest)))
	}
}
