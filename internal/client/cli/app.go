package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/filex"
	"github.com/dmitrijs2005/certkeeper/internal/netx"
	pb "github.com/dmitrijs2005/certkeeper/internal/proto"
	"github.com/dmitrijs2005/certkeeper/internal/server/auth"
	gs "github.com/dmitrijs2005/certkeeper/internal/server/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// API is the subset of the gRPC client certctl uses.
type API interface {
	Issue(ctx context.Context, in *pb.IssueRequest) (*pb.Certificate, error)
	AttachArtifact(ctx context.Context, in *pb.AttachArtifactRequest) (*pb.Certificate, error)
	Void(ctx context.Context, in *pb.VoidRequest) (*pb.Certificate, error)
	Get(ctx context.Context, id string) (*pb.Certificate, error)
	FetchArtifact(ctx context.Context, id string) (*pb.ArtifactResponse, error)
	VerifyArtifact(ctx context.Context, id string) (*pb.VerifyArtifactResponse, error)
	VerifyByCode(ctx context.Context, code string) (*pb.Verification, error)
	VerifyByNumber(ctx context.Context, number string) (*pb.Verification, error)
	Report(ctx context.Context, in *pb.ReportRequest) (*pb.ReportResponse, error)
}

// Dialer connects to the server at addr and authenticates with token.
type Dialer func(addr, token string) (API, io.Closer, error)

// TokenEnv names the environment variable holding the operator token.
const TokenEnv = "CERTKEEPER_TOKEN"

const dateLayout = "2006-01-02"

// ErrUsage is returned for unknown commands and bad arguments.
var ErrUsage = errors.New("usage")

type App struct {
	in     *bufio.Reader
	inFd   int
	out    io.Writer
	errw   io.Writer
	dial   Dialer
	getenv func(string) string
}

// NewApp returns an App talking to the real server over stdin/stdout.
func NewApp() *App {
	return &App{
		in:     bufio.NewReader(os.Stdin),
		inFd:   int(os.Stdin.Fd()),
		out:    os.Stdout,
		errw:   os.Stderr,
		dial:   dialGRPC,
		getenv: os.Getenv,
	}
}

func dialGRPC(addr, token string) (API, io.Closer, error) {
	conn, err := gs.Dial(addr)
	if err != nil {
		return nil, nil, err
	}
	return gs.NewClient(conn, token), conn, nil
}

type command struct {
	help string
	run  func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"token":  {"mint an operator token", (*App).token},
	"issue":  {"issue a certificate to a student", (*App).issue},
	"attach": {"attach a PDF (file or URL) to a certificate", (*App).attach},
	"void":   {"void an active certificate", (*App).void},
	"get":    {"show a certificate record", (*App).get},
	"fetch":  {"download a certificate PDF", (*App).fetch},
	"check":  {"check a stored PDF against its digest", (*App).check},
	"verify": {"public lookup by -code or -number", (*App).verify},
	"report": {"list certificates for audit", (*App).report},
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		a.usage()
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return cmd.run(a, ctx, args[1:])
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Usage: certctl <command> [flags]")
	for _, n := range names {
		fmt.Fprintf(a.out, "  %-8s %s\n", n, commands[n].help)
	}
}

// connFlags registers the flags shared by all commands that talk to the server.
func (a *App) connFlags(fs *flag.FlagSet) (addr, token *string) {
	addr = fs.String("a", "localhost:50051", "server address")
	token = fs.String("t", "", "operator token (default $"+TokenEnv+")")
	return addr, token
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errw)
	return fs
}

func (a *App) connect(addr, token string) (API, io.Closer, error) {
	if token == "" {
		token = a.getenv(TokenEnv)
	}
	return a.dial(addr, token)
}

// withAPI parses args, dials, runs fn and closes the connection.
func (a *App) withAPI(ctx context.Context, fs *flag.FlagSet, args []string, fn func(API) error) error {
	addr, token := a.connFlags(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	api, closer, err := a.connect(*addr, *token)
	if err != nil {
		return fmt.Errorf("connect %s: %w", *addr, err)
	}
	defer closer.Close()
	return fn(api)
}

var printer = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

func (a *App) print(m proto.Message) error {
	b, err := printer.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func required(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: -%s is required", ErrUsage, name)
	}
	return nil
}

func (a *App) token(ctx context.Context, args []string) error {
	fs := a.newFlagSet("token")
	operator := fs.String("operator", "", "operator name recorded on voids")
	secret := fs.String("secret", "", "server secret key (prompted when empty)")
	ttl := fs.Duration("ttl", 8*time.Hour, "token validity")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if err := required("operator", *operator); err != nil {
		return err
	}

	key := []byte(*secret)
	if len(key) == 0 {
		var err error
		key, err = GetSecret(a.inFd, a.in, "Server secret key", a.errw)
		if err != nil {
			return err
		}
		defer wipe(key)
	}

	tok, err := auth.GenerateToken(*operator, key, *ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, tok)
	return err
}

func (a *App) issue(ctx context.Context, args []string) error {
	fs := a.newFlagSet("issue")
	student := fs.String("student", "", "student id")
	date := fs.String("date", "", "backdated issue date ("+dateLayout+")")

	return a.withAPI(ctx, fs, args, func(api API) error {
		if err := required("student", *student); err != nil {
			return err
		}
		req := &pb.IssueRequest{StudentId: *student}
		if *date != "" {
			d, err := time.Parse(dateLayout, *date)
			if err != nil {
				return fmt.Errorf("%w: -date: %v", ErrUsage, err)
			}
			req.IssuedAt = timestamppb.New(d)
		}
		c, err := api.Issue(ctx, req)
		if err != nil {
			return err
		}
		return a.print(c)
	})
}

func (a *App) attach(ctx context.Context, args []string) error {
	fs := a.newFlagSet("attach")
	id := fs.String("id", "", "certificate id")
	src := fs.String("file", "", "PDF path or http(s) URL")

	return a.withAPI(ctx, fs, args, func(api API) error {
		if err := required("id", *id); err != nil {
			return err
		}
		if err := required("file", *src); err != nil {
			return err
		}

		var (
			data []byte
			err  error
		)
		if netx.IsURL(*src) {
			data, err = netx.Download(ctx, nil, *src)
		} else {
			data, err = os.ReadFile(*src)
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", *src, err)
		}

		c, err := api.AttachArtifact(ctx, &pb.AttachArtifactRequest{CertificateId: *id, Data: data})
		if err != nil {
			return err
		}
		return a.print(c)
	})
}

func (a *App) void(ctx context.Context, args []string) error {
	fs := a.newFlagSet("void")
	id := fs.String("id", "", "certificate id")
	reason := fs.String("reason", "", "why the certificate is revoked")

	return a.withAPI(ctx, fs, args, func(api API) error {
		if err := required("id", *id); err != nil {
			return err
		}
		if err := required("reason", *reason); err != nil {
			return err
		}
		c, err := api.Void(ctx, &pb.VoidRequest{CertificateId: *id, Reason: *reason})
		if err != nil {
			return err
		}
		return a.print(c)
	})
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := a.newFlagSet("get")
	id := fs.String("id", "", "certificate id")

	return a.withAPI(ctx, fs, args, func(api API) error {
		if err := required("id", *id); err != nil {
			return err
		}
		c, err := api.Get(ctx, *id)
		if err != nil {
			return err
		}
		return a.print(c)
	})
}

func (a *App) fetch(ctx context.Context, args []string) error {
	fs := a.newFlagSet("fetch")
	id := fs.String("id", "", "certificate id")
	out := fs.String("out", "", "where to write the PDF")

	return a.withAPI(ctx, fs, args, func(api API) error {
		if err := required("id", *id); err != nil {
			return err
		}
		if err := required("out", *out); err != nil {
			return err
		}
		res, err := api.FetchArtifact(ctx, *id)
		if err != nil {
			return err
		}
		if err := filex.WriteFileAtomic(*out, res.Data, 0o644); err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "wrote %d bytes to %s\n", len(res.Data), *out)
		return err
	})
}

func (a *App) check(ctx context.Context, args []string) error {
	fs := a.newFlagSet("check")
	id := fs.String("id", "", "certificate id")

	return a.withAPI(ctx, fs, args, func(api API) error {
		if err := required("id", *id); err != nil {
			return err
		}
		res, err := api.VerifyArtifact(ctx, *id)
		if err != nil {
			return err
		}
		return a.print(res)
	})
}

func (a *App) verify(ctx context.Context, args []string) error {
	fs := a.newFlagSet("verify")
	code := fs.String("code", "", "verification code")
	number := fs.String("number", "", "certificate number")

	return a.withAPI(ctx, fs, args, func(api API) error {
		var (
			v   *pb.Verification
			err error
		)
		switch {
		case *code != "" && *number != "":
			return fmt.Errorf("%w: give -code or -number, not both", ErrUsage)
		case *code != "":
			v, err = api.VerifyByCode(ctx, *code)
		case *number != "":
			v, err = api.VerifyByNumber(ctx, *number)
		default:
			return fmt.Errorf("%w: -code or -number is required", ErrUsage)
		}
		if err != nil {
			return err
		}
		return a.print(v)
	})
}

func (a *App) report(ctx context.Context, args []string) error {
	fs := a.newFlagSet("report")
	from := fs.String("from", "", "first day ("+dateLayout+")")
	to := fs.String("to", "", "day after the last one ("+dateLayout+")")
	includeVoid := fs.Bool("include-void", false, "include voided certificates")
	institution := fs.String("institution", "", "institution name")
	department := fs.String("department", "", "department")
	nationalID := fs.String("national-id", "", "list one student's certificates instead")

	return a.withAPI(ctx, fs, args, func(api API) error {
		req := &pb.ReportRequest{
			IncludeVoid: *includeVoid,
			Institution: *institution,
			Department:  *department,
			NationalId:  *nationalID,
		}
		if *nationalID == "" {
			f, err := time.Parse(dateLayout, *from)
			if err != nil {
				return fmt.Errorf("%w: -from: %v", ErrUsage, err)
			}
			t, err := time.Parse(dateLayout, *to)
			if err != nil {
				return fmt.Errorf("%w: -to: %v", ErrUsage, err)
			}
			req.From, req.To = timestamppb.New(f), timestamppb.New(t)
		}
		res, err := api.Report(ctx, req)
		if err != nil {
			return err
		}
		return a.print(res)
	})
}
