package bill

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBill(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bill Suite")
}

var _ = Describe("FormatDate", func() {
	When("the date is well formed", func() {
		It("should render the short French form", func() {
			out, err := FormatDate("2004-04-04")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("4 Avr. 04"))
		})

		It("should not pad the day", func() {
			out, err := FormatDate("2021-11-22")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("22 Nov. 21"))
		})

		It("should pad the year to two digits", func() {
			out, err := FormatDate("2001-01-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("1 Jan. 01"))
		})
	})

	When("the date is corrupted", func() {
		It("returns an error", func() {
			_, err := FormatDate("not-a-date")
			Expect(err).To(HaveOccurred())
		})

		It("returns an error for an empty string", func() {
			_, err := FormatDate("")
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("FormatStatus", func() {
	It("should render pending as En attente", func() {
		Expect(FormatStatus(StatusPending)).To(Equal("En attente"))
	})

	It("should render accepted as Accepté", func() {
		Expect(FormatStatus(StatusAccepted)).To(Equal("Accepté"))
	})

	It("should render refused as Refusé", func() {
		Expect(FormatStatus(StatusRefused)).To(Equal("Refusé"))
	})

	It("should render anything else as Inconnu", func() {
		Expect(FormatStatus(Status("garbage"))).To(Equal("Inconnu"))
	})
})

var _ = Describe("FormatRecord", func() {
	When("the record is clean", func() {
		var d DisplayBill

		BeforeEach(func() {
			d = FormatRecord(Bill{ID: "b1", Date: "2004-04-04", Status: StatusPending})
		})

		It("should format the date", func() {
			Expect(d.DateDisplay).To(Equal("4 Avr. 04"))
		})

		It("should not flag a fallback", func() {
			Expect(d.DateFallback).To(BeFalse())
		})

		It("should format the status", func() {
			Expect(d.StatusLabel).To(Equal("En attente"))
		})
	})

	When("the record has a corrupted date", func() {
		var d DisplayBill

		BeforeEach(func() {
			d = FormatRecord(Bill{ID: "b2", Date: "04/04/2004", Status: StatusAccepted})
		})

		It("should keep the raw date string", func() {
			Expect(d.DateDisplay).To(Equal("04/04/2004"))
		})

		It("should flag the fallback", func() {
			Expect(d.DateFallback).To(BeTrue())
		})

		It("should still format the status", func() {
			Expect(d.StatusLabel).To(Equal("Accepté"))
		})
	})
})
