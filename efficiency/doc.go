// Package efficiency computes how well fluorophores match optical
// configurations.
//
// For every fluorophore the engine reports:
//   - excitation efficiency: the share of the excitation path that the
//     fluorophore absorbs, area(path × ex) / area(path)
//   - emission efficiency: the share of the emission spectrum that reaches
//     the detector, area(path × em) / area(em)
//   - brightness: ex × em × extinction coefficient × quantum yield / 1000
//
// Values are rounded to three decimals. A report never fails because of a
// single fluorophore: missing spectra leave the efficiencies unset and other
// problems are recorded on the entry.
package efficiency
