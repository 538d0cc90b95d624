package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perfstack/neutronbench/bench"
	"github.com/perfstack/neutronbench/neutron"
	"github.com/perfstack/neutronbench/octavia"
	"github.com/perfstack/neutronbench/scenario"
)

type runOptions struct {
	region      string
	nameFormat  string
	metricsAddr string
	timeout     time.Duration
	admin       bool
	lbaas       bool
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <preset>",
		Short: "Run one scenario preset against the cloud",
		Long: "Run executes a single preset once and prints a timing table of the\n" +
			"actions it performed. See the scenarios command for the preset list.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			log, err := buildLogger(debug)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runPreset(cmd, args[0], opts, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.region, "region", os.Getenv("OS_REGION_NAME"), "cloud region of the service endpoints")
	flags.StringVar(&opts.nameFormat, "name-format", bench.DefaultNameFormat, "format of generated resource names")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the run")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Minute, "abort the run after this long")
	flags.BoolVar(&opts.admin, "admin", false, "treat the authenticated user as admin for BGP VPN operations")
	flags.BoolVar(&opts.lbaas, "lbaas", false, "enable the load balancer service")
	return cmd
}

func runPreset(cmd *cobra.Command, name string, opts runOptions, log *zap.Logger) error {
	preset, ok := scenario.GetPreset(name)
	if !ok {
		return errors.Errorf("unknown scenario preset %q, see the scenarios command", name)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	runID := uuid.New()
	names, err := bench.NewNameGenerator(runID, opts.nameFormat)
	if err != nil {
		return err
	}
	actions := &bench.ActionLog{}

	n, err := buildScenario(ctx, opts, names, actions, log)
	if err != nil {
		return err
	}

	if opts.metricsAddr != "" {
		shutdown := serveMetrics(opts.metricsAddr, log)
		defer shutdown()
	}

	log.Info("running preset",
		zap.String("preset", preset.Name),
		zap.String("run_id", runID.String()))

	start := time.Now()
	runErr := preset.Run(ctx, n)
	elapsed := time.Since(start)

	printActions(cmd.OutOrStdout(), actions.Actions())

	if runErr != nil {
		return errors.Wrapf(runErr, "preset %s failed after %s", preset.Name, elapsed.Round(time.Millisecond))
	}
	log.Info("preset finished",
		zap.String("preset", preset.Name),
		zap.Duration("elapsed", elapsed))
	return nil
}

// buildScenario authenticates against the cloud from the OS_* environment
// and assembles the scenario facade. One name generator and one action log
// are shared across every layer so the whole run lands a single naming
// convention and timing chronology.
func buildScenario(ctx context.Context, opts runOptions, names *bench.NameGenerator, actions *bench.ActionLog, log *zap.Logger) (*scenario.Neutron, error) {
	ao, err := openstack.AuthOptionsFromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "reading OS_* environment")
	}
	ao.AllowReauth = true

	provider, err := openstack.NewClient(ao.IdentityEndpoint)
	if err != nil {
		return nil, errors.Wrap(err, "creating provider client")
	}
	provider.HTTPClient = http.Client{Transport: &bench.MeteredTransport{}}

	if err := openstack.Authenticate(ctx, provider, ao); err != nil {
		return nil, errors.Wrap(err, "authenticating")
	}

	endpoint := gophercloud.EndpointOpts{Region: opts.region}
	networkClient, err := openstack.NewNetworkV2(provider, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "locating the network service")
	}
	networkSvc, err := neutron.New(networkClient,
		neutron.WithNameGenerator(names),
		neutron.WithActionLog(actions),
		neutron.WithLogger(log.Named("neutron")),
	)
	if err != nil {
		return nil, err
	}

	scenarioOpts := []scenario.Option{
		scenario.WithNameGenerator(names),
		scenario.WithLogger(log.Named("scenario")),
	}
	if opts.admin {
		scenarioOpts = append(scenarioOpts, scenario.WithAdmin(networkSvc))
	}
	if opts.lbaas {
		lbClient, err := openstack.NewLoadBalancerV2(provider, endpoint)
		if err != nil {
			return nil, errors.Wrap(err, "locating the load balancer service")
		}
		lbSvc, err := octavia.New(lbClient,
			octavia.WithNameGenerator(names),
			octavia.WithActionLog(actions),
			octavia.WithLogger(log.Named("octavia")),
		)
		if err != nil {
			return nil, err
		}
		scenarioOpts = append(scenarioOpts, scenario.WithLoadBalancers(lbSvc))
	}

	return scenario.NewNeutron(networkSvc, scenarioOpts...)
}

// serveMetrics exposes the package metrics on addr until the returned
// shutdown func runs.
func serveMetrics(addr string, log *zap.Logger) func() {
	router := mux.NewRouter()
	router.Handle("/metrics", bench.GetHandler())

	srv := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

// printActions renders the run's action chronology as a per-action summary
// table, first-seen order.
func printActions(w io.Writer, actions []bench.Action) {
	if len(actions) == 0 {
		return
	}

	type row struct {
		count int
		total time.Duration
		min   time.Duration
		max   time.Duration
	}
	rows := map[string]*row{}
	var order []string
	for _, a := range actions {
		d := a.Duration()
		r, ok := rows[a.Name]
		if !ok {
			r = &row{min: d}
			rows[a.Name] = r
			order = append(order, a.Name)
		}
		r.count++
		r.total += d
		if d < r.min {
			r.min = d
		}
		if d > r.max {
			r.max = d
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tCOUNT\tMIN\tAVG\tMAX\tTOTAL")
	for _, name := range order {
		r := rows[name]
		avg := r.total / time.Duration(r.count)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			name, r.count,
			r.min.Round(time.Millisecond), avg.Round(time.Millisecond),
			r.max.Round(time.Millisecond), r.total.Round(time.Millisecond))
	}
	_ = tw.Flush()
}
