// Package tlds provides a collection of constants and lists representing official top-level domains (TLDs)
// and pseudo or special-use TLDs. These lists are useful in various applications such as domain validation,
// URL parsing, or filtering of domains for specific uses.
//
// The package includes two types of TLD lists:
//  1. **Official TLDs and eTLDs**: A list of top-level domains recognized by the Internet Assigned Numbers Authority (IANA)
//     and public suffixes maintained by the Public Suffix List.
//  2. **Pseudo TLDs**: A list of unofficial or experimental top-level domains commonly used in private networks,
//     testing environments, and specific applications.
package tlds
