package gwas

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Recognized summary-statistics column names. Aliases cover the common
// outputs of PLINK, GCTA and regenie alongside the short canonical names.
const (
	ColChrom = "CHR"
	ColSNP   = "SNP"
	ColP     = "P"
)

var (
	chromAliases = []string{ColChrom, "CHROM", "#CHROM", "chromosome", "chr"}
	snpAliases   = []string{ColSNP, "ID", "variant_id", "rsid", "MarkerName"}
	pAliases     = []string{ColP, "p", "PVAL", "P_BOLT_LMM", "p_value"}
)

// ColumnIndices holds the resolved indices of the summary-statistics columns.
type ColumnIndices struct {
	Chrom int
	SNP   int
	P     int
}

// Parser reads GWAS summary statistics from a tab-delimited file.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	columns    ColumnIndices
	headerLine string
}

// NewParser creates a summary-statistics parser for the given file.
// Supports plain and gzipped input; "-" reads from stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open summary stats file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read summary stats header: %w", err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek summary stats file: %w", err)
	}

	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	if err := p.parseHeader(); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	p := &Parser{
		reader: bufio.NewReader(r),
	}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}

	return p, nil
}

// parseHeader reads the header line and resolves column indices.
func (p *Parser) parseHeader() error {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return fmt.Errorf("read header: %w", err)
			}
			if line == "" {
				return &ParseError{
					Line:    p.lineNumber,
					Message: "no header line found",
				}
			}
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")

		// The #CHROM convention means a leading # can itself be the header.
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#CHROM") {
			continue
		}

		p.headerLine = line
		return p.parseColumnIndices(line)
	}
}

func (p *Parser) parseColumnIndices(headerLine string) error {
	columns := strings.Split(headerLine, "\t")

	p.columns = ColumnIndices{Chrom: -1, SNP: -1, P: -1}

	match := func(col string, aliases []string) bool {
		for _, a := range aliases {
			if strings.EqualFold(col, a) {
				return true
			}
		}
		return false
	}

	for i, col := range columns {
		switch {
		case p.columns.Chrom == -1 && match(col, chromAliases):
			p.columns.Chrom = i
		case p.columns.SNP == -1 && match(col, snpAliases):
			p.columns.SNP = i
		case p.columns.P == -1 && match(col, pAliases):
			p.columns.P = i
		}
	}

	if p.columns.Chrom == -1 {
		return &ParseError{Line: p.lineNumber, Message: "chromosome column not found in header (expected CHR, CHROM or #CHROM)"}
	}
	if p.columns.SNP == -1 {
		return &ParseError{Line: p.lineNumber, Message: "variant id column not found in header (expected SNP, ID or rsid)"}
	}
	if p.columns.P == -1 {
		return &ParseError{Line: p.lineNumber, Message: "p-value column not found in header (expected P or PVAL)"}
	}

	return nil
}

// Next reads the next record. Returns nil, nil at end of input.
func (p *Parser) Next() (*Record, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return nil, fmt.Errorf("read record line: %w", err)
		}
		// A final line without a trailing newline still carries a record.
		if line == "" {
			return nil, nil
		}
	}
	p.lineNumber++

	line = strings.TrimRight(line, "\r\n")
	if line == "" || strings.HasPrefix(line, "#") {
		if err == io.EOF {
			return nil, nil
		}
		return p.Next()
	}

	return p.parseLine(line)
}

func (p *Parser) parseLine(line string) (*Record, error) {
	fields := strings.Split(line, "\t")

	minCols := max(p.columns.Chrom, p.columns.SNP, p.columns.P)
	if len(fields) <= minCols {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("expected at least %d columns, found %d", minCols+1, len(fields)),
		}
	}

	pval, err := strconv.ParseFloat(fields[p.columns.P], 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid p-value: %s", fields[p.columns.P]),
		}
	}

	return &Record{
		Chrom: fields[p.columns.Chrom],
		SNP:   fields[p.columns.SNP],
		P:     pval,
	}, nil
}

// ReadAll reads and validates every remaining record.
func (p *Parser) ReadAll() ([]Record, error) {
	var records []Record
	for {
		r, err := p.Next()
		if err != nil {
			return nil, err
		}
		if r == nil {
			return records, nil
		}
		if err := r.Validate(); err != nil {
			return nil, &ParseError{Line: p.lineNumber, Message: err.Error()}
		}
		records = append(records, *r)
	}
}

// Header returns the header line as read from the input.
func (p *Parser) Header() string {
	return p.headerLine
}

// Columns returns the resolved column indices.
func (p *Parser) Columns() ColumnIndices {
	return p.columns
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError represents an error during summary-statistics parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("summary stats parse error at line %d: %s", e.Line, e.Message)
}
