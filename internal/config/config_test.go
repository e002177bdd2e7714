package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbit/internal/celestial"
	"github.com/san-kum/orbit/internal/config"
)

var _ = Describe("Scenario", func() {
	Describe("Load and Save", func() {
		It("round-trips a scenario through YAML", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "scenario.yaml")

			original := config.GetPreset("two-body")
			Expect(original).NotTo(BeNil())
			Expect(config.Save(path, original)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Name).To(Equal(original.Name))
			Expect(loaded.Dt).To(Equal(original.Dt))
			Expect(loaded.Bodies).To(HaveLen(len(original.Bodies)))
			Expect(loaded.Bodies[1].Elements.SemiMajorAxisAU).
				To(Equal(original.Bodies[1].Elements.SemiMajorAxisAU))
		})

		It("applies defaults to a minimal file", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "minimal.yaml")
			Expect(os.WriteFile(path, []byte("name: bare\n"), 0644)).To(Succeed())

			sc, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(sc.Dt).To(Equal(config.DefaultDt))
			Expect(sc.Integrator).To(Equal(config.DefaultIntegrator))
			Expect(sc.SampleEvery).To(Equal(config.DefaultSampleEvery))
		})

		It("fails on a missing file", func() {
			_, err := config.Load("/does/not/exist.yaml")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Descriptors", func() {
		It("converts authoring units to SI", func() {
			sc := config.GetPreset("inner")
			descs, err := sc.Descriptors()
			Expect(err).NotTo(HaveOccurred())

			// Mercury: semi-major axis given in AU.
			Expect(descs[1].Elements.SemiMajorAxis).
				To(BeNumerically("~", 0.387098*celestial.AU, 1e3))
			// The Moon: given in meters, parent-centric.
			Expect(descs[4].Elements.SemiMajorAxis).To(Equal(3.84399e8))
			Expect(descs[4].ParentID).To(Equal(3))
			// Planets carry no parent.
			Expect(descs[1].ParentID).To(Equal(celestial.NoParent))
		})

		It("rejects a body with neither state nor elements", func() {
			sc := &config.Scenario{
				Bodies: []config.BodyConfig{{ID: 0, Name: "ghost", Mass: 1}},
			}
			_, err := sc.Descriptors()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("BuildSystem", func() {
		It("builds a ready system from every preset", func() {
			for _, name := range config.ListPresets() {
				sc := config.GetPreset(name)
				sys, err := sc.BuildSystem()
				Expect(err).NotTo(HaveOccurred(), "preset %s", name)
				Expect(sys.Len()).To(Equal(len(sc.Bodies)), "preset %s", name)

				for _, b := range sys.Bodies() {
					Expect(b.Position.IsValid()).To(BeTrue(), "preset %s body %s", name, b.Name)
					Expect(b.Velocity.IsValid()).To(BeTrue(), "preset %s body %s", name, b.Name)
					Expect(b.Acc.IsValid()).To(BeTrue(), "preset %s body %s", name, b.Name)
				}
			}
		})

		It("keeps the full solar preset gravitationally bound", func() {
			sys, err := config.GetPreset("solar").BuildSystem()
			Expect(err).NotTo(HaveOccurred())
			Expect(sys.TotalEnergy()).To(BeNumerically("<", 0))
		})
	})
})
