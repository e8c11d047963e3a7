/*
Package adif edits and reformats ADIF (.adi) log files.

	+----------+     +-----------+     +----------+
	|  Split   | --> |  Segment  | --> |  Editor  |
	| (header) |     | (records) |     | (fields) |
	+----------+     +-----+-----+     +----------+
	                       |
	                 +-----+------+
	                 |   Layout   |
	                 | (oneline / |
	                 | multiline) |
	                 +------------+

🎯 Purpose:
- Add fields to every record, optionally overriding existing values
- Delete fields by exact name or wildcard pattern
- Convert between one-field-per-line and one-record-per-line layouts

🔄 Flow:
1. Split cuts the header off at <EOH>
2. Segment cuts the body into records at every <eor>
3. Editor runs deletes, then adds, on each record
4. The document is reassembled; nothing is returned on conflict

⚡ Key Rules:
- Field extents come from the length prefix, never from whitespace
- Header and trailing text pass through byte for byte
- Added fields follow the record's own layout style
- Matching on field names ignores case

🔍 Example:

	res, err := adif.Process(ctx, doc, adif.Options{
		Add:      []adif.FieldValue{{Name: "OPERATOR", Value: "KN2D"}},
		Delete:   []string{"N3FJP%"},
		Override: true,
	})
	if err != nil {
		var conflict *adif.ConflictError
		if errors.As(err, &conflict) {
			// conflict.Record, conflict.Field
		}
		return err
	}
	fmt.Print(res.Output)
*/
package adif
