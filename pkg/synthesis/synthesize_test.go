package synthesis_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/example"
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ir"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

func image(name string, objects ...example.Object) example.Example {
	img, err := example.NewImage(name, objects...)
	Expect(err).ToNot(HaveOccurred())
	return img
}

func box(left, top float64) geometry.Box {
	return geometry.Box{Left: left, Top: top, Width: 10, Height: 10}
}

func predicate(objects ast.ObjectList) ast.PredicateLambda {
	f, ok := objects.(ast.Filter)
	Expect(ok).To(BeTrue(), "candidate objects are not a filter: %s", objects)
	return f.Predicate
}

var _ = Describe("Synthesize", func() {
	var (
		ctx      context.Context
		examples []example.Example
		cfg      synthesis.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = synthesis.Config{}
	})

	When("the target is the only object with a given base label", func() {
		BeforeEach(func() {
			examples = []example.Example{
				image("a", example.Object{Box: box(0, 0), Base: "circle", Precise: []string{"target"}, Groups: []string{"round"}}),
				image("b", example.Object{Box: box(0, 0), Base: "square"}),
			}
		})

		It("finds the label test at cost one", func() {
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Labels).To(HaveLen(1))

			label := result.Labels[0]
			Expect(label.Label).To(Equal(ast.ObjectLiteral{Label: "target"}))
			Expect(label.Exhausted).To(BeFalse())
			Expect(label.Candidates).ToNot(BeEmpty())
			Expect(len(label.Candidates)).To(BeNumerically("<=", synthesis.DefaultMaxCandidates))

			for _, c := range label.Candidates {
				Expect(c.Cost).To(Equal(1))
				Expect(c.Form).To(Equal(ir.Disjunctive))
				Expect(c.Depth).To(Equal(1))
				Expect(c.Clauses).To(Equal(5))
				Expect(c.Apply.Action).To(Equal(ast.ObjectLiteral{Label: "target"}))

				p := predicate(c.Apply.Objects)
				Expect(p.Var).To(Equal(ast.ObjectVariable{Name: "x1"}))
				Expect(p.Body).To(Equal(ast.LabelIs{Var: ast.ObjectVariable{Name: "x1"}, Label: ast.ObjectLiteral{Label: "circle"}}))
			}
			Expect(result.Verify(examples)).To(Succeed())
		})

		It("selects the target and nothing else", func() {
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())

			objects := result.Labels[0].Candidates[0].Apply.Objects
			selected, err := ast.Select(objects, examples[0])
			Expect(err).ToNot(HaveOccurred())
			Expect(selected).To(ConsistOf(box(0, 0)))

			selected, err = ast.Select(objects, examples[1])
			Expect(err).ToNot(HaveOccurred())
			Expect(selected).To(BeEmpty())
		})

		It("searches group labels the same way", func() {
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Groups).To(HaveLen(1))

			group := result.Groups[0]
			Expect(group.Group).To(Equal(ast.GroupLiteral{Label: "round"}))
			Expect(group.Candidates).ToNot(BeEmpty())
			for _, c := range group.Candidates {
				Expect(c.Cost).To(Equal(1))
				Expect(c.Apply.Action).To(Equal(ast.GroupLiteral{Label: "round"}))
				Expect(predicate(c.Apply.Objects).Body.String()).To(Equal(`LabelIs(x1, "circle")`))
			}
		})

		It("stops enumerating at the candidate limit", func() {
			cfg.MaxCandidates = 2
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Labels[0].Candidates).To(HaveLen(2))
		})

		It("produces the same result with concurrent workers", func() {
			sequential, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())

			cfg.Workers = 4
			concurrent, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(concurrent).To(Equal(sequential))
		})

		It("is cancelled with its context", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := synthesis.Synthesize(cancelled, examples, cfg)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, solver.Incomplete)).To(BeTrue())
		})
	})

	When("the target is only distinguished by its neighbours", func() {
		BeforeEach(func() {
			examples = []example.Example{
				image("a",
					example.Object{Box: box(0, 0), Base: "circle", Precise: []string{"target"}},
					example.Object{Box: box(20, 0), Base: "square"},
				),
				image("b", example.Object{Box: box(0, 0), Base: "circle"}),
			}
		})

		It("quantifies over the other objects of the image", func() {
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Labels).To(HaveLen(1))

			candidates := result.Labels[0].Candidates
			Expect(candidates).ToNot(BeEmpty())
			for _, c := range candidates {
				Expect(c.Cost).To(Equal(candidates[0].Cost))
				Expect(c.Cost).To(BeNumerically(">", 1))
				Expect(c.Depth).To(Equal(1))
				Expect(strings.Contains(predicate(c.Apply.Objects).Body.String(), "exists x0")).To(BeTrue())
			}
			Expect(result.Verify(examples)).To(Succeed())
		})
	})

	When("the target is the leftmost of identical objects", func() {
		BeforeEach(func() {
			examples = []example.Example{
				image("a",
					example.Object{Box: box(0, 0), Base: "circle", Precise: []string{"target"}},
					example.Object{Box: box(20, 0), Base: "circle"},
				),
			}
			cfg.UsePlacementSynthesis = true
		})

		It("compares the placement of every other object", func() {
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Labels).To(HaveLen(1))

			candidates := result.Labels[0].Candidates
			Expect(candidates).ToNot(BeEmpty())
			for _, c := range candidates {
				// The quantifier and a single placement test, each
				// counted once although both quantifiers share the body.
				Expect(c.Cost).To(Equal(2))
				Expect(predicate(c.Apply.Objects).Body.String()).To(Equal("forall x0 . (Left(x1, x0))"))
			}
			Expect(result.Verify(examples)).To(Succeed())
		})
	})

	When("the target is the object contained in a frame", func() {
		BeforeEach(func() {
			examples = []example.Example{
				image("a",
					example.Object{Box: geometry.Box{Width: 100, Height: 100}, Base: "frame"},
					example.Object{Box: box(10, 10), Base: "dot", Precise: []string{"target"}},
					example.Object{Box: box(200, 0), Base: "dot"},
				),
			}
			cfg.UseContainmentSynthesis = true
		})

		It("solves for an overlap threshold", func() {
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Labels).To(HaveLen(1))

			candidates := result.Labels[0].Candidates
			Expect(candidates).ToNot(BeEmpty())
			for _, c := range candidates {
				Expect(c.Cost).To(Equal(candidates[0].Cost))
				body := predicate(c.Apply.Objects).Body.String()
				Expect(body).To(MatchRegexp(`(exists|forall) x0`))
				Expect(body).To(MatchRegexp(`(IOU|Containment)\(x[01], x[01]\) >= [0-9.]+`))
			}
			Expect(result.Verify(examples)).To(Succeed())
		})
	})

	When("the target colors lie between colors that are not targets", func() {
		BeforeEach(func() {
			blob := func(left, y float64, precise ...string) example.Object {
				return example.Object{Box: box(left, 0), Base: "blob", Precise: precise, Color: color.YUV{Y: y}}
			}
			examples = []example.Example{
				image("a",
					blob(0, 0),
					blob(20, 0.25, "target"),
					blob(40, 0.75, "target"),
					blob(60, 1),
				),
			}
			cfg.UseColorSynthesis = true
		})

		It("finds one color test centered on an unobserved color", func() {
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Labels).To(HaveLen(1))

			candidates := result.Labels[0].Candidates
			Expect(candidates).ToNot(BeEmpty())
			for _, c := range candidates {
				Expect(c.Cost).To(Equal(4))
				test, ok := predicate(c.Apply.Objects).Body.(ast.ColorComparison)
				Expect(ok).To(BeTrue(), "expected a single color test, got %s", predicate(c.Apply.Objects).Body)
				Expect(test.Color.Y).To(BeNumerically(">", 0.25))
				Expect(test.Color.Y).To(BeNumerically("<", 0.75))
				Expect(test.Threshold).To(BeNumerically(">=", 0.25))
			}
			Expect(result.Verify(examples)).To(Succeed())
		})
	})

	When("the examples contradict each other", func() {
		BeforeEach(func() {
			examples = []example.Example{
				image("a", example.Object{Box: box(0, 0), Base: "circle", Precise: []string{"target"}}),
				image("b", example.Object{Box: box(0, 0), Base: "circle"}),
			}
			cfg.InitialDepth = 0
			cfg.MaxDepth = 1
			cfg.MaxClauses = 5
		})

		It("reports the target as exhausted without failing", func() {
			log, hook := test.NewNullLogger()
			cfg.Logger = log
			result, err := synthesis.Synthesize(ctx, examples, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Labels).To(HaveLen(1))
			Expect(result.Labels[0].Exhausted).To(BeTrue())
			Expect(result.Labels[0].Candidates).To(BeEmpty())

			var warnings []string
			for _, e := range hook.AllEntries() {
				if e.Level == logrus.WarnLevel {
					warnings = append(warnings, e.Message)
				}
			}
			Expect(warnings).To(ConsistOf("no candidate found within the search bounds"))
		})
	})

	It("rejects an inconsistent configuration", func() {
		cfg.InitialDepth = 4
		cfg.MaxDepth = 2
		_, err := synthesis.Synthesize(ctx, nil, cfg)
		Expect(err).To(MatchError(ContainSubstring("initial depth 4 exceeds max depth 2")))
	})

	It("returns an empty result without examples", func() {
		result, err := synthesis.Synthesize(ctx, nil, cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Labels).To(BeEmpty())
		Expect(result.Groups).To(BeEmpty())
	})
})
