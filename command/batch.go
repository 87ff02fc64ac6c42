package command

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-platemap/platemap"
	"github.com/goliatone/go-platemap/sources/delim"
	"github.com/goliatone/go-platemap/sources/xlsx"
)

// ConvertJob describes one file conversion in a batch manifest.
type ConvertJob struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Sheet  string `json:"sheet,omitempty"`
	View   string `json:"view,omitempty"`
	Format string `json:"format,omitempty"`
	Header *int   `json:"header,omitempty"`
}

// BatchLoader loads conversion jobs from a source.
type BatchLoader func(ctx context.Context) ([]ConvertJob, error)

// JobRunner converts a single job.
type JobRunner interface {
	RunJob(ctx context.Context, job ConvertJob) error
}

// JobRunnerFunc adapts a function to a JobRunner.
type JobRunnerFunc func(ctx context.Context, job ConvertJob) error

func (f JobRunnerFunc) RunJob(ctx context.Context, job ConvertJob) error {
	if f == nil {
		return errors.New("job runner is required", errors.CategoryInternal).
			WithTextCode("JOB_RUNNER_NIL")
	}
	return f(ctx, job)
}

// BatchLimits bounds batch execution throughput.
type BatchLimits struct {
	MaxJobs     int
	MinInterval time.Duration
}

// BatchCommand wires CLI execution for bulk file conversions.
type BatchCommand struct {
	runner    JobRunner
	loader    BatchLoader
	cliConfig gcmd.CLIConfig
	limits    BatchLimits
	sleep     func(time.Duration)
}

// BatchOption customizes batch commands.
type BatchOption func(*BatchCommand)

// WithBatchCLIConfig overrides CLI configuration.
func WithBatchCLIConfig(cfg gcmd.CLIConfig) BatchOption {
	return func(cmd *BatchCommand) {
		cmd.cliConfig = cfg
	}
}

// WithBatchLimits overrides batch execution limits.
func WithBatchLimits(limits BatchLimits) BatchOption {
	return func(cmd *BatchCommand) {
		cmd.limits = limits
	}
}

// WithBatchRunner replaces the file-based job runner.
func WithBatchRunner(runner JobRunner) BatchOption {
	return func(cmd *BatchCommand) {
		cmd.runner = runner
	}
}

// NewBatchConvertCommand creates a CLI command that converts plate layout
// files in bulk from a JSON manifest or a loader.
func NewBatchConvertCommand(pipeline *platemap.Pipeline, loader BatchLoader, opts ...BatchOption) *BatchCommand {
	cmd := &BatchCommand{
		runner: fileJobRunner{pipeline: pipeline},
		loader: loader,
		cliConfig: gcmd.CLIConfig{
			Path:        []string{"platemap-batch"},
			Description: "Convert plate layout files in bulk",
			Group:       "platemap",
		},
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cmd)
		}
	}
	return cmd
}

// CLIHandler exposes the CLI handler.
func (c *BatchCommand) CLIHandler() any {
	return &batchCLI{cmd: c}
}

// CLIOptions returns CLI configuration.
func (c *BatchCommand) CLIOptions() gcmd.CLIConfig {
	if c == nil {
		return gcmd.CLIConfig{}
	}
	return c.cliConfig
}

func (c *BatchCommand) run(ctx context.Context, from string) (int, error) {
	if c == nil {
		return 0, errors.New("batch command is nil", errors.CategoryInternal).
			WithTextCode("BATCH_CMD_NIL")
	}
	if c.runner == nil {
		return 0, errors.New("job runner is required", errors.CategoryValidation).
			WithTextCode("RUNNER_REQUIRED")
	}

	jobs, err := c.loadJobs(ctx, from)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, job := range jobs {
		if c.limits.MaxJobs > 0 && count >= c.limits.MaxJobs {
			break
		}
		if err := c.runner.RunJob(ctx, job); err != nil {
			return count, err
		}
		count++
		if c.limits.MinInterval > 0 && c.sleep != nil {
			c.sleep(c.limits.MinInterval)
		}
	}
	return count, nil
}

func (c *BatchCommand) loadJobs(ctx context.Context, from string) ([]ConvertJob, error) {
	if strings.TrimSpace(from) != "" {
		return loadJobsFromFile(from)
	}
	if c.loader == nil {
		return nil, errors.New("batch loader not configured", errors.CategoryValidation).
			WithTextCode("LOADER_REQUIRED")
	}
	return c.loader(ctx)
}

type batchCLI struct {
	cmd  *BatchCommand
	From string `kong:"name='from',help='Path to JSON conversion jobs'"`
}

func (c *batchCLI) Run() error {
	if c == nil || c.cmd == nil {
		return errors.New("batch command is required", errors.CategoryInternal).
			WithTextCode("BATCH_CMD_NIL")
	}
	_, err := c.cmd.run(context.Background(), c.From)
	return err
}

func loadJobsFromFile(path string) ([]ConvertJob, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryExternal, "read batch file failed").
			WithTextCode("BATCH_FILE_READ")
	}

	var jobs []ConvertJob
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "batch file invalid JSON").
			WithTextCode("BATCH_FILE_INVALID")
	}
	return jobs, nil
}

// fileJobRunner converts files on disk through the pipeline.
type fileJobRunner struct {
	pipeline *platemap.Pipeline
}

func (r fileJobRunner) RunJob(ctx context.Context, job ConvertJob) error {
	if r.pipeline == nil {
		return errors.New("pipeline is required", errors.CategoryInternal).
			WithTextCode("PIPELINE_REQUIRED")
	}
	if strings.TrimSpace(job.Input) == "" || strings.TrimSpace(job.Output) == "" {
		return errors.New("job input and output paths are required", errors.CategoryValidation).
			WithTextCode("JOB_PATHS_REQUIRED")
	}

	grid, err := readGridFile(job.Input, job.Sheet)
	if err != nil {
		return err
	}

	opts := platemap.RunOptions{View: platemap.View(job.View)}
	if job.Header != nil {
		opts.HeaderRow = *job.Header
		opts.HeaderSet = true
	}

	result, err := r.pipeline.Run(ctx, grid, opts)
	if err != nil {
		return platemap.AsGoError(err)
	}

	format := job.Format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(job.Output), ".")
	}
	renderer, err := platemap.RendererFor(platemap.Format(format))
	if err != nil {
		return platemap.AsGoError(err)
	}

	out, err := os.Create(job.Output)
	if err != nil {
		return errors.Wrap(err, errors.CategoryExternal, "create output file failed").
			WithTextCode("JOB_OUTPUT_CREATE")
	}
	defer func() {
		_ = out.Close()
	}()

	renderOpts := platemap.RenderOptions{
		CSV:  platemap.CSVOptions{IncludeHeaders: true},
		XLSX: platemap.XLSXOptions{IncludeHeaders: true},
	}
	if _, err := renderer.Render(ctx, result.Table, out, renderOpts); err != nil {
		return platemap.AsGoError(err)
	}
	return nil
}

func readGridFile(path, sheet string) (platemap.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryExternal, "open input file failed").
			WithTextCode("JOB_INPUT_OPEN")
	}
	defer func() {
		_ = file.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return xlsx.ReadGrid(file, sheet)
	default:
		return delim.ReadGrid(file, delim.Options{})
	}
}
